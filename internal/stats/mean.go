// Package stats holds the population-mean filter shared by the signature
// pipeline's selection stages.
package stats

import "math"

// Comparison selects which side of the population mean a value must fall on.
type Comparison int

const (
	// Above keeps values strictly greater than the mean.
	Above Comparison = iota
	// Below keeps values strictly less than the mean.
	Below
)

// String returns the comparison name.
func (c Comparison) String() string {
	switch c {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "unknown"
	}
}

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
//
// The mean is accumulated incrementally, so a population of identical values has a
// mean exactly equal to that value.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := 0.0
	for i, v := range values {
		m += (v - m) / float64(i+1)
	}
	return m
}

// FilterByMean returns, in input order, the indexes of the values that compare
// strictly against the population mean as cmp requires.
//
// Ties never pass: a single value, or a population of equal values, yields no
// indexes. An empty input yields no indexes.
func FilterByMean(values []float64, cmp Comparison) []int {
	mean := Mean(values)
	keep := make([]int, 0, len(values))
	for i, v := range values {
		switch cmp {
		case Above:
			if v > mean {
				keep = append(keep, i)
			}
		case Below:
			if v < mean {
				keep = append(keep, i)
			}
		}
	}
	return keep
}

// Ints converts integer samples to float64 for FilterByMean.
func Ints(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
