package calc

import (
	"errors"
	"testing"

	"github.com/step-calc/stepcalc/internal/testutil"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, expected int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{-12, 18, 6},
		{12, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
	}

	for _, test := range tests {
		if got := GCD(test.a, test.b); got != test.expected {
			t.Errorf("GCD(%d, %d) = %d, want %d", test.a, test.b, got, test.expected)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, expected int64
	}{
		{4, 6, 12},
		{3, 5, 15},
		{-4, 6, 12},
		{0, 5, 0},
		{0, 0, 0},
	}

	for _, test := range tests {
		if got := LCM(test.a, test.b); got != test.expected {
			t.Errorf("LCM(%d, %d) = %d, want %d", test.a, test.b, got, test.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, test := range tests {
		if got := Clamp(test.v, test.lo, test.hi); got != test.expected {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", test.v, test.lo, test.hi, got, test.expected)
		}
	}
}

func TestPercentageOf(t *testing.T) {
	got, err := PercentageOf(25, 200)
	if err != nil {
		t.Fatalf("PercentageOf failed: %v", err)
	}
	testutil.ApproxEqual(t, got, 12.5, testutil.Epsilon)

	if _, err := PercentageOf(1, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("expected DomainError for zero whole, got %v", err)
	}
}

func TestSolveQuadraticRealRoots(t *testing.T) {
	roots, err := SolveQuadratic(1, -5, 6)
	if err != nil {
		t.Fatalf("SolveQuadratic failed: %v", err)
	}
	if !roots.IsReal() {
		t.Fatal("expected real roots")
	}
	testutil.ApproxEqual(t, real(roots.X1), 3, testutil.Epsilon)
	testutil.ApproxEqual(t, real(roots.X2), 2, testutil.Epsilon)
}

func TestSolveQuadraticComplexRoots(t *testing.T) {
	roots, err := SolveQuadratic(1, 0, 1)
	if err != nil {
		t.Fatalf("SolveQuadratic failed: %v", err)
	}
	if roots.IsReal() {
		t.Fatal("expected a complex-conjugate pair")
	}
	testutil.ApproxEqual(t, real(roots.X1), 0, testutil.Epsilon)
	testutil.ApproxEqual(t, imag(roots.X1), 1, testutil.Epsilon)
	testutil.ApproxEqual(t, real(roots.X2), 0, testutil.Epsilon)
	testutil.ApproxEqual(t, imag(roots.X2), -1, testutil.Epsilon)
}

func TestSolveQuadraticDegenerate(t *testing.T) {
	if _, err := SolveQuadratic(0, 2, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected DomainError for a = 0, got %v", err)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n        int
		expected int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}

	for _, test := range tests {
		got, err := Factorial(test.n)
		if err != nil {
			t.Fatalf("Factorial(%d) failed: %v", test.n, err)
		}
		if got != test.expected {
			t.Errorf("Factorial(%d) = %d, want %d", test.n, got, test.expected)
		}
	}

	if _, err := Factorial(-1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected DomainError for negative input, got %v", err)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97}
	for _, n := range primes {
		if !IsPrime(n) {
			t.Errorf("IsPrime(%d) = false, want true", n)
		}
	}

	composites := []int{-7, 0, 1, 4, 9, 15, 100}
	for _, n := range composites {
		if IsPrime(n) {
			t.Errorf("IsPrime(%d) = true, want false", n)
		}
	}
}

func TestFibonacci(t *testing.T) {
	if got := Fibonacci(0); got != nil {
		t.Errorf("Fibonacci(0) = %v, want nil", got)
	}

	got := Fibonacci(8)
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13}
	if len(got) != len(want) {
		t.Fatalf("Fibonacci(8) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Fibonacci(8) = %v, want %v", got, want)
		}
	}
}
