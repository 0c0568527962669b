package seq

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by sequence generators.
var (
	ErrInvalidCount  = errors.New("seq: count must be >= 2")
	ErrZeroStep      = errors.New("seq: step must not be zero")
	ErrStepDirection = errors.New("seq: step points away from stop")
	ErrNonFinite     = errors.New("seq: start, stop, and step must be finite")
	ErrCountOverflow = errors.New("seq: sample count overflows int")
)

// LinSpaceByIndex returns the index-th sample of the arithmetic
// sequence with the given step: float64(index)*step.
//
// The index may have any sign and the step may be any finite value,
// including zero (every sample is zero) and negative values
// (descending sequence).
func LinSpaceByIndex(index int, step float64) float64 {
	return float64(index) * step
}

// Linspace returns n evenly spaced samples from start to stop
// inclusive. n must be at least 2.
//
// Interior samples are computed as start + i*step from the integer
// index i; the endpoints are assigned exactly.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrInvalidCount
	}

	out := make([]float64, n)
	step := (stop - start) / float64(n-1)

	for i := 1; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}

	out[0] = start
	out[n-1] = stop

	return out, nil
}

// Arange returns samples start + i*step over the half-open interval
// [start, stop). An empty interval yields an empty slice. Inputs must
// be finite; a step of zero, a step pointing away from stop, or a
// sample count beyond the int range is an error.
func Arange(start, stop, step float64) ([]float64, error) {
	if !isFinite(start) || !isFinite(stop) || !isFinite(step) {
		return nil, ErrNonFinite
	}

	if step == 0 {
		return nil, ErrZeroStep
	}

	span := stop - start
	if span == 0 {
		return []float64{}, nil
	}

	if span*step < 0 {
		return nil, ErrStepDirection
	}

	// span may still round to +Inf for extreme finite inputs; the
	// ratio check catches that along with genuinely huge counts.
	ratio := span / step
	if ratio >= float64(math.MaxInt) {
		return nil, ErrCountOverflow
	}

	n := int(math.Ceil(ratio))
	out := make([]float64, n)

	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}

// Ramp returns n samples i*step for i = 0..n-1, reusing dst's
// capacity when possible. n <= 0 yields an empty slice.
//
// The index ramp is written first and then scaled as one block, so
// the result matches LinSpaceByIndex bit-for-bit at every index.
func Ramp(dst []float64, n int, step float64) []float64 {
	dst = ensureLen(dst, n)

	for i := range dst {
		dst[i] = float64(i)
	}

	vecmath.ScaleBlockInPlace(dst, step)

	return dst
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ensureLen returns a slice with the requested length, reusing buf
// capacity if possible.
func ensureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}
