package cmd

import (
	"bytes"
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/devrand/module/random"
)

// execute runs the root command with args, after resetting all flags to
// their defaults, and returns what was printed.
func execute(t *testing.T, args ...string) (string, error) {
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	histogramCmd.Flags().VisitAll(reset)
	for _, c := range []*cobra.Command{randintCmd, randomIntegersCmd} {
		c.Flags().Lookup("size").Changed = false
	}
	flagSize = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Setenv("DEVRAND_LOGLEVEL", "error")
	err := rootCmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, out string) interface{} {
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	return v
}

func TestRandintCommand(t *testing.T) {
	out, err := execute(t, "randint", "3", "5")
	require.NoError(t, err)
	value, ok := decode(t, out).(float64)
	require.True(t, ok, "expected a scalar, got %s", out)
	assert.GreaterOrEqual(t, value, 3.0)
	assert.Less(t, value, 5.0)

	out, err = execute(t, "randint", "4", "--size", "2,3")
	require.NoError(t, err)
	rows, ok := decode(t, out).([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 2)
	for _, row := range rows {
		cells := row.([]interface{})
		require.Len(t, cells, 3)
		for _, cell := range cells {
			assert.GreaterOrEqual(t, cell.(float64), 0.0)
			assert.Less(t, cell.(float64), 4.0)
		}
	}
}

func TestRandomIntegersCommand(t *testing.T) {
	out, err := execute(t, "random-integers", "7", "7", "--size", "4")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{7.0, 7.0, 7.0, 7.0}, decode(t, out))

	out, err = execute(t, "random-integers", "1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, decode(t, out))
}

func TestSeededCommandsAreReproducible(t *testing.T) {
	first, err := execute(t, "randint", "1000000", "--size", "16", "--seed", "c0ffee", "--device", "2")
	require.NoError(t, err)
	second, err := execute(t, "randint", "1000000", "--size", "16", "--seed", "c0ffee", "--device", "2")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := execute(t, "randint", "1000000", "--size", "16", "--seed", "c0ffee", "--device", "3")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "randint", "5", "5")
	assert.True(t, random.IsInvalidRangeError(err))

	_, err = execute(t, "random-integers", "0")
	assert.True(t, random.IsInvalidRangeError(err))

	_, err = execute(t, "randint", "five")
	assert.Error(t, err)

	_, err = execute(t, "randint", "1", "2", "3")
	assert.Error(t, err)

	_, err = execute(t, "randint", "5", "--seed", "xyz")
	assert.Error(t, err)
}

func TestMetricsPortUnavailable(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()
	port := occupied.Addr().(*net.TCPAddr).Port

	out, err := execute(t, "randint", "5", "--metrics-port", strconv.Itoa(port))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not start metrics server")
	assert.Empty(t, out)
	assert.Nil(t, metricsServer)
}

func TestHistogramCommand(t *testing.T) {
	out, err := execute(t, "histogram", "--draws", "500", "--space", "4", "--seed", "01")
	require.NoError(t, err)

	for _, expected := range []string{"value", "mean", "stddev", "chi-square", "verdict"} {
		assert.Contains(t, out, expected)
	}
	// one line per value of the range
	for _, v := range []string{"0 ", "1 ", "2 ", "3 "} {
		assert.True(t, hasLinePrefix(out, v), "missing count of value %q in:\n%s", v, out)
	}

	_, err = execute(t, "histogram", "--space", "1")
	assert.Error(t, err)
}

func hasLinePrefix(out string, prefix string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
