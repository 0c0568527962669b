// Package floatcmp provides tolerance-based comparison of float64 values.
//
// Direct equality of floating-point results is unreliable: 0.1 + 0.2
// is not 0.3 in IEEE-754 binary64, because neither 0.1 nor 0.2 is
// exactly representable. The comparisons here accept a small
// difference instead:
//
//	floatcmp.ApproxEqual(0.1+0.2, 0.3, 1e-10)   // true
//	floatcmp.ApproxEqualDefault(0.1+0.2, 0.3)   // true, tol = 10*Epsilon
//
// An absolute tolerance breaks down far from magnitude 1. For inputs
// of widely varying scale, build a [Comparer] with a relative
// tolerance (or both):
//
//	c, _ := floatcmp.NewComparer(
//	    floatcmp.WithAbsTolerance(1e-12),
//	    floatcmp.WithRelTolerance(1e-9),
//	)
//	c.Equal(1e16, 1e16+4)   // true
//
// All functions are pure and safe for concurrent use.
package floatcmp
