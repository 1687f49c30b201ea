package analytics

import (
	"math"
	"sort"

	"hftviz/internal/errors"
)

// Mean returns the arithmetic mean of values.
// Requesting it over an empty slice is an ErrTypeComputation failure.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewComputationError("mean of empty sequence")
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the median of values without mutating the input.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewComputationError("median of empty sequence")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Std returns the sample standard deviation of values. Fewer than two
// values have no dispersion to estimate, so the result is 0.
func Std(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean, _ := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
