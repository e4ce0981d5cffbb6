package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/onflow/devrand/model/array"
	"github.com/onflow/devrand/model/shape"
	"github.com/onflow/devrand/module/random"
)

var flagSize []int

// randintCmd draws from the half-open range [LOW, HIGH), or [0, LOW) without HIGH.
var randintCmd = &cobra.Command{
	Use:   "randint LOW [HIGH]",
	Short: "Draw integers from [LOW, HIGH), or from [0, LOW) if HIGH is omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return drawRun(cmd, args, sampler.Randint)
	},
}

// randomIntegersCmd draws from the closed range [LOW, HIGH], or [1, LOW] without HIGH.
var randomIntegersCmd = &cobra.Command{
	Use:   "random-integers LOW [HIGH]",
	Short: "Draw integers from [LOW, HIGH], or from [1, LOW] if HIGH is omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return drawRun(cmd, args, sampler.RandomIntegers)
	},
}

func init() {
	for _, c := range []*cobra.Command{randintCmd, randomIntegersCmd} {
		c.Flags().IntSliceVar(&flagSize, "size", nil, "dimensions of the output array, a single value if omitted")
		rootCmd.AddCommand(c)
	}
}

type drawFunc func(b random.Bounds, size shape.Shape) (*array.Array, error)

// drawRun parses the bounds, draws and prints the values as JSON.
func drawRun(cmd *cobra.Command, args []string, draw drawFunc) error {
	bounds, err := parseBounds(args)
	if err != nil {
		return err
	}

	var size shape.Shape
	if cmd.Flags().Changed("size") {
		size = shape.Of(flagSize...)
	}

	values, err := draw(bounds, size)
	if err != nil {
		return err
	}
	log.Debug().
		Str("command", cmd.Name()).
		Str("size", size.String()).
		Int("count", values.Size()).
		Msg("values drawn")

	enc, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("could not encode values: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(enc))
	return err
}

func parseBounds(args []string) (random.Bounds, error) {
	low, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOW %q: %w", args[0], err)
	}
	if len(args) == 1 {
		return random.SingleBound{N: low}, nil
	}
	high, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HIGH %q: %w", args[1], err)
	}
	return random.RangeBound{Low: low, High: high}, nil
}
