// Package testutil holds shared helpers for stepcalc tests.
package testutil

import (
	"math"
	"testing"
)

// Epsilon is the default tolerance for float comparisons
const Epsilon = 1e-9

// ApproxEqual fails the test unless got is within eps of want
func ApproxEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > eps {
		t.Errorf("got %g, want %g (±%g)", got, want, eps)
	}
}

// FloatsEqual fails the test unless got and want match element-wise
// within Epsilon.
func FloatsEqual(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %v, want %v (length mismatch)", got, want)
		return
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > Epsilon {
			t.Errorf("got %v, want %v (differ at index %d)", got, want, i)
			return
		}
	}
}
