package calc

import "math"

// Roots holds the two solutions of a quadratic equation. For a
// non-negative discriminant both imaginary parts are zero; otherwise
// the roots form a complex-conjugate pair.
type Roots struct {
	X1 complex128
	X2 complex128
}

// IsReal reports whether both roots are real numbers
func (r Roots) IsReal() bool {
	return imag(r.X1) == 0 && imag(r.X2) == 0
}

// SolveQuadratic solves a*x² + b*x + c = 0. A zero leading coefficient
// does not describe a quadratic and is rejected with a domain error.
func SolveQuadratic(a, b, c float64) (Roots, error) {
	if a == 0 {
		return Roots{}, newError(KindDomain, "coefficient a must be non-zero")
	}
	discriminant := b*b - 4*a*c
	if discriminant >= 0 {
		sq := math.Sqrt(discriminant)
		return Roots{
			X1: complex((-b+sq)/(2*a), 0),
			X2: complex((-b-sq)/(2*a), 0),
		}, nil
	}
	re := -b / (2 * a)
	im := math.Sqrt(-discriminant) / (2 * a)
	return Roots{
		X1: complex(re, im),
		X2: complex(re, -im),
	}, nil
}
