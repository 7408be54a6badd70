// Package percentile provides order statistics over float64 samples using
// linear interpolation between closest ranks.
package percentile

import (
	"math"
	"slices"
)

// Value returns the p-th percentile of the samples. p is clamped to
// [0, 100]. The input is copied before sorting and is not modified.
// Returns 0 for an empty slice.
func Value(samples []float64, p float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	return FromSorted(sorted, p)
}

// FromSorted returns the p-th percentile of samples already sorted in
// ascending order. Callers that need several percentiles of the same
// data can sort once and call this repeatedly.
func FromSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if p <= 0 {
		return sorted[0]
	}

	if p >= 100 {
		return sorted[n-1]
	}

	// Virtual index into the sorted data, interpolated linearly between
	// the two nearest ranks.
	h := float64(n-1) * p / 100
	lo := int(math.Floor(h))
	frac := h - float64(lo)

	if lo+1 >= n {
		return sorted[n-1]
	}

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Median returns the 50th percentile of the samples.
func Median(samples []float64) float64 {
	return Value(samples, 50)
}
