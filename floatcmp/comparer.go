package floatcmp

import (
	"errors"
	"math"
)

// ErrNegativeTolerance is returned by NewComparer when a negative
// tolerance is configured.
var ErrNegativeTolerance = errors.New("floatcmp: tolerance must be >= 0")

// Comparer compares float64 values under a configured tolerance
// policy. Without options it applies DefaultTolerance as an absolute
// threshold. A Comparer is immutable after construction and safe for
// concurrent use.
type Comparer struct {
	absTol   float64
	relTol   float64
	equalInf bool
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithAbsTolerance sets the absolute tolerance: values compare equal
// when their difference is below tol.
func WithAbsTolerance(tol float64) Option {
	return func(c *Comparer) {
		c.absTol = tol
	}
}

// WithRelTolerance sets a relative tolerance, scaled by the larger
// input magnitude. When both absolute and relative tolerances are
// configured, values compare equal if either test passes. This keeps
// comparisons meaningful for inputs far from magnitude 1, where a
// fixed absolute threshold is either too tight or too loose.
func WithRelTolerance(rel float64) Option {
	return func(c *Comparer) {
		c.relTol = rel
	}
}

// WithEqualInf makes infinities of the same sign compare equal.
// Without it the raw formula applies: inf - inf is NaN, so two equal
// infinities compare false.
func WithEqualInf() Option {
	return func(c *Comparer) {
		c.equalInf = true
	}
}

// NewComparer builds a Comparer from options. Negative tolerances are
// rejected with ErrNegativeTolerance.
func NewComparer(opts ...Option) (*Comparer, error) {
	c := &Comparer{absTol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.absTol < 0 || c.relTol < 0 {
		return nil, ErrNegativeTolerance
	}

	return c, nil
}

// Equal reports whether a and b compare equal under the configured
// tolerances. NaN never compares equal to anything.
func (c *Comparer) Equal(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	if c.equalInf && (math.IsInf(a, 0) || math.IsInf(b, 0)) {
		return a == b
	}

	diff := math.Abs(a - b)
	if diff < c.absTol {
		return true
	}

	if c.relTol > 0 {
		largest := math.Max(math.Abs(a), math.Abs(b))
		return diff < c.relTol*largest
	}

	return false
}
