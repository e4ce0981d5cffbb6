package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/onflow/devrand/model/shape"
	"github.com/onflow/devrand/module/random"
	"github.com/onflow/devrand/utils/stats"
)

var (
	flagDraws        int
	flagSpace        int64
	flagSignificance float64
)

// histogramCmd checks the uniformity of randint(0, SPACE) on the configured device.
var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Draw from [0, space) and test the counts for uniformity",
	Long: `Draws --draws values from randint(0, --space), prints how often each value
	 was drawn, the sample mean and standard deviation, and the outcome of a
	 chi-square goodness of fit test against the uniform distribution.`,
	Args: cobra.NoArgs,
	RunE: histogramRun,
}

func init() {
	rootCmd.AddCommand(histogramCmd)
	addHistogramCmdFlags()
}

func addHistogramCmdFlags() {
	histogramCmd.Flags().IntVar(&flagDraws, "draws", 1000, "number of values to draw")
	histogramCmd.Flags().Int64Var(&flagSpace, "space", 10, "size of the sampled range [0, space)")
	histogramCmd.Flags().Float64Var(&flagSignificance, "significance", stats.DefaultSignificance, "significance level of the goodness of fit test")
}

func histogramRun(cmd *cobra.Command, _ []string) error {
	if flagSpace < 2 || flagSpace > stats.MaxHistogramBins {
		return fmt.Errorf("space must be in [2, %d], got %d", stats.MaxHistogramBins, flagSpace)
	}
	if flagDraws <= 0 {
		return fmt.Errorf("draws must be positive, got %d", flagDraws)
	}

	values, err := sampler.Randint(random.SingleBound{N: flagSpace}, shape.Of(flagDraws))
	if err != nil {
		return err
	}
	drawn := values.Get()

	observed, err := stats.Histogram(drawn, 0, flagSpace)
	if err != nil {
		return fmt.Errorf("could not build histogram: %w", err)
	}
	summary, err := stats.Summarize(drawn)
	if err != nil {
		return fmt.Errorf("could not summarize draws: %w", err)
	}
	result, err := stats.ChiSquareTest(observed, stats.Uniform(flagDraws, int(flagSpace)), flagSignificance)
	if err != nil {
		return fmt.Errorf("could not run goodness of fit test: %w", err)
	}

	log.Info().
		Int("draws", flagDraws).
		Int64("space", flagSpace).
		Float64("statistic", result.Statistic).
		Float64("p_value", result.PValue).
		Bool("uniform", result.Passed()).
		Msg("goodness of fit computed")

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "value\tcount\t")
	for v, count := range observed {
		fmt.Fprintf(w, "%d\t%.0f\t\n", v, count)
	}
	fmt.Fprintf(w, "mean\t%.4f\t\n", summary.Mean)
	fmt.Fprintf(w, "stddev\t%.4f\t\n", summary.StdDev)
	fmt.Fprintf(w, "chi-square\t%.4f\t(critical %.4f, p-value %.4f)\n", result.Statistic, result.Critical, result.PValue)
	verdict := "uniform"
	if !result.Passed() {
		verdict = "not uniform"
	}
	fmt.Fprintf(w, "verdict\t%s\t(significance %.2f)\n", verdict, flagSignificance)
	return w.Flush()
}
