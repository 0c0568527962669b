package floatcmp

import (
	"errors"
	"math"
	"testing"
)

func TestEqualSlices(t *testing.T) {
	x, y := 0.1, 0.2

	tests := []struct {
		name     string
		a        []float64
		b        []float64
		tol      float64
		expected bool
	}{
		{name: "equal", a: []float64{0, 0.5, 1}, b: []float64{0, 0.5, 1}, tol: 1e-12, expected: true},
		{name: "within tolerance", a: []float64{x + y}, b: []float64{0.3}, tol: 1e-10, expected: true},
		{name: "one element out", a: []float64{0, 1, 2}, b: []float64{0, 1, 2.1}, tol: 1e-3, expected: false},
		{name: "length mismatch", a: []float64{1, 2}, b: []float64{1}, tol: 1.0, expected: false},
		{name: "both empty", a: nil, b: nil, tol: 1e-12, expected: true},
		{name: "nan element", a: []float64{math.NaN()}, b: []float64{math.NaN()}, tol: 1.0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EqualSlices(tt.a, tt.b, tt.tol)
			if got != tt.expected {
				t.Fatalf("EqualSlices() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaxDelta(t *testing.T) {
	got, err := MaxDelta([]float64{0, 1, 2}, []float64{0.5, 1, 1})
	if err != nil {
		t.Fatalf("MaxDelta() error: %v", err)
	}
	if got != 1 {
		t.Fatalf("MaxDelta() = %v, want 1", got)
	}

	if _, err := MaxDelta([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	got, err = MaxDelta([]float64{1, math.NaN()}, []float64{1, 0})
	if err != nil {
		t.Fatalf("MaxDelta() error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Fatalf("MaxDelta() with NaN input = %v, want NaN", got)
	}
}

func TestRMSDelta(t *testing.T) {
	got, err := RMSDelta([]float64{1, 1, 1, 1}, []float64{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("RMSDelta() error: %v", err)
	}
	if !ApproxEqual(got, 1, 1e-12) {
		t.Fatalf("RMSDelta() = %v, want 1", got)
	}

	// sqrt((3^2 + 4^2)/2) = sqrt(12.5)
	got, err = RMSDelta([]float64{3, 4}, []float64{0, 0})
	if err != nil {
		t.Fatalf("RMSDelta() error: %v", err)
	}
	if !ApproxEqual(got, math.Sqrt(12.5), 1e-12) {
		t.Fatalf("RMSDelta() = %v, want sqrt(12.5)", got)
	}

	got, err = RMSDelta(nil, nil)
	if err != nil {
		t.Fatalf("RMSDelta() error: %v", err)
	}
	if got != 0 {
		t.Fatalf("RMSDelta(nil, nil) = %v, want 0", got)
	}

	if _, err := RMSDelta([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}
