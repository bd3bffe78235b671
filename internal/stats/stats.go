// Package stats aggregates per-dataset error percentages into descriptive
// statistics, tolerance counts, and a reliability rating.
package stats

import (
	"math"
	"sort"
)

const (
	q1Percentile = 25.0
	q3Percentile = 75.0
)

// Summary holds descriptive statistics over an error set. StdDev and
// Variance use the sample (n-1) definitions.
type Summary struct {
	Mean     float64
	Median   float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
	Range    float64
	Q1       float64
	Q3       float64
	IQR      float64
}

// Summarize computes a Summary over errors. At least two values are
// required for the sample variance to be defined.
func Summarize(errors []float64) (Summary, error) {
	if len(errors) == 0 {
		return Summary{}, ErrNoData
	}
	if len(errors) < 2 {
		return Summary{}, ErrInsufficientSample
	}

	sorted := make([]float64, len(errors))
	copy(sorted, errors)
	sort.Float64s(sorted)

	mean := mean(sorted)
	variance := sampleVariance(sorted, mean)
	q1 := percentile(sorted, q1Percentile)
	q3 := percentile(sorted, q3Percentile)
	min := sorted[0]
	max := sorted[len(sorted)-1]

	return Summary{
		Mean:     mean,
		Median:   percentile(sorted, 50),
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      min,
		Max:      max,
		Range:    max - min,
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
	}, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleVariance(values []float64, mean float64) float64 {
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

// percentile returns the p-th percentile (0-100) of an already sorted slice
// using linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	idx := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))

	if lower == upper || upper >= len(sorted) {
		return sorted[lower]
	}

	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
