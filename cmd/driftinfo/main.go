// Command driftinfo compares accumulated-sum sequence generation
// against index-derived samples.
//
// Usage:
//
//	driftinfo [flags]
//
// Examples:
//
//	driftinfo
//	driftinfo -step 0.1 -count 11
//	driftinfo -step 0.001 -count 100001 -every 10000
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-numeric/seq"
)

func main() {
	step := flag.Float64("step", 0.1, "sequence step")
	count := flag.Int("count", 11, "number of samples")
	every := flag.Int("every", 1, "print every n-th sample")
	flag.Parse()

	if *count < 1 || *every < 1 {
		fmt.Fprintln(os.Stderr, "driftinfo: count and every must be >= 1")
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "index\taccumulated\tindexed\tdrift\t")

	acc := 0.0
	maxDrift := 0.0

	for i := 0; i < *count; i++ {
		indexed := seq.LinSpaceByIndex(i, *step)

		drift := math.Abs(acc - indexed)
		if drift > maxDrift {
			maxDrift = drift
		}

		if i%*every == 0 || i == *count-1 {
			fmt.Fprintf(w, "%d\t%.17g\t%.17g\t%.3g\t\n", i, acc, indexed, drift)
		}

		acc += *step
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "driftinfo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nmax drift over %d samples: %.3g\n", *count, maxDrift)
}
