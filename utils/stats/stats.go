// Package stats holds the statistical checks used to assess the sampler output:
// histograms over integer ranges, the chi-square goodness of fit test and
// summary statistics.
package stats

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSignificance is the significance level used by goodness of fit checks.
const DefaultSignificance = 0.05

// MaxHistogramBins bounds the number of bins a histogram allocates.
const MaxHistogramBins = 1 << 20

// Histogram counts the occurrences of each integer of [low, high) in values.
// Values outside the range are reported as an error.
func Histogram(values []int64, low, high int64) ([]float64, error) {
	if low >= high {
		return nil, fmt.Errorf("empty histogram range [%d, %d)", low, high)
	}
	if uint64(high)-uint64(low) > MaxHistogramBins {
		return nil, fmt.Errorf("histogram range [%d, %d) exceeds %d bins", low, high, MaxHistogramBins)
	}
	counts := make([]float64, high-low)
	for _, v := range values {
		if v < low || v >= high {
			return nil, fmt.Errorf("value %d out of histogram range [%d, %d)", v, low, high)
		}
		counts[v-low]++
	}
	return counts, nil
}

// Uniform returns the expected counts of n draws spread uniformly over k bins.
func Uniform(n int, k int) []float64 {
	expected := make([]float64, k)
	for i := range expected {
		expected[i] = float64(n) / float64(k)
	}
	return expected
}

// ChiSquareResult is the outcome of a chi-square goodness of fit test.
type ChiSquareResult struct {
	Statistic float64
	// DegreesOfFreedom is the number of bins minus one.
	DegreesOfFreedom float64
	// PValue is the probability of a statistic at least this large under the null hypothesis.
	PValue float64
	// Critical is the statistic value above which the null hypothesis is rejected.
	Critical float64
}

// Passed returns true if the observed counts are consistent with the expected ones.
func (r ChiSquareResult) Passed() bool {
	return r.Statistic <= r.Critical
}

// ChiSquareTest runs the chi-square goodness of fit test of observed counts
// against expected counts at the given significance level.
func ChiSquareTest(observed, expected []float64, significance float64) (ChiSquareResult, error) {
	if len(observed) != len(expected) {
		return ChiSquareResult{}, fmt.Errorf("observed and expected counts differ in length: %d != %d", len(observed), len(expected))
	}
	if len(observed) < 2 {
		return ChiSquareResult{}, fmt.Errorf("at least 2 bins are required, got %d", len(observed))
	}
	if significance <= 0 || significance >= 1 {
		return ChiSquareResult{}, fmt.Errorf("significance must be in (0, 1), got %v", significance)
	}
	for i, e := range expected {
		if e <= 0 {
			return ChiSquareResult{}, fmt.Errorf("expected count of bin %d must be positive, got %v", i, e)
		}
	}

	dist := distuv.ChiSquared{K: float64(len(observed) - 1)}
	statistic := stat.ChiSquare(observed, expected)
	return ChiSquareResult{
		Statistic:        statistic,
		DegreesOfFreedom: dist.K,
		PValue:           dist.Survival(statistic),
		Critical:         dist.Quantile(1 - significance),
	}, nil
}

// Summary holds the mean and standard deviation of a sample.
type Summary struct {
	Mean   float64
	StdDev float64
}

// Summarize computes the summary statistics of values.
func Summarize(values []int64) (Summary, error) {
	data := make(stats.Float64Data, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("could not compute mean: %w", err)
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, fmt.Errorf("could not compute standard deviation: %w", err)
	}
	return Summary{Mean: mean, StdDev: stdDev}, nil
}
