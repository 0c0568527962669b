// Package seq generates arithmetic float64 sequences without
// cumulative rounding drift.
//
// The naive way to walk a grid is a running sum:
//
//	for x := 0.0; x < 1.0; x += 0.1 { ... }
//
// Every iteration adds the rounding error of one more addition, so
// the k-th value slowly wanders away from k*0.1 and the loop may even
// run one iteration too many or too few. The generators here derive
// every sample from an exact integer index instead:
//
//	for i := 0; i <= 10; i++ {
//	    x := seq.LinSpaceByIndex(i, 0.1)   // float64(i) * 0.1
//	}
//
// Each sample is one multiplication from exact inputs, so sample k is
// bit-identical no matter how many samples were computed before it.
package seq
