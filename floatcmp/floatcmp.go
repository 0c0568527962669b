package floatcmp

import "math"

// Epsilon is the machine epsilon for float64: the gap between 1.0 and
// the next larger representable value.
const Epsilon = 0x1p-52

// DefaultTolerance is the threshold used by ApproxEqualDefault:
// ten machine epsilons, about 2.22e-15.
const DefaultTolerance = 10 * Epsilon

// ApproxEqual reports whether a and b differ by less than tol.
//
// The comparison is strict: abs(a-b) < tol. NaN inputs never compare
// equal. Two infinities of the same sign also compare false, because
// their difference is NaN; use a [Comparer] with [WithEqualInf] when
// infinity equality is needed. A negative or zero tol makes nothing
// compare equal.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// ApproxEqualDefault reports whether a and b differ by less than
// DefaultTolerance.
func ApproxEqualDefault(a, b float64) bool {
	return ApproxEqual(a, b, DefaultTolerance)
}
