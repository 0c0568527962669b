package floatcmp

import (
	"errors"
	"math"
)

// ErrLengthMismatch is returned by slice deltas when the inputs have
// different lengths.
var ErrLengthMismatch = errors.New("floatcmp: slice lengths differ")

// EqualSlices reports whether a and b have the same length and every
// element pair satisfies ApproxEqual under tol.
func EqualSlices(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i, av := range a {
		if !ApproxEqual(av, b[i], tol) {
			return false
		}
	}

	return true
}

// MaxDelta returns the largest absolute element-wise difference
// between a and b. A NaN in either input yields NaN.
func MaxDelta(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	maxDiff := 0.0
	for i, av := range a {
		d := math.Abs(av - b[i])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}

		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// RMSDelta returns the root-mean-square element-wise difference
// between a and b. Empty inputs yield 0.
func RMSDelta(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	if len(a) == 0 {
		return 0, nil
	}

	sum := 0.0
	for i, av := range a {
		d := av - b[i]
		sum += d * d
	}

	return mathSqrt(sum / float64(len(a))), nil
}
