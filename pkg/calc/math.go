package calc

import "math"

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is
// defined as 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, computed as
// |a*b| / GCD(a, b). When both inputs are 0 the result is 0.
func LCM(a, b int64) int64 {
	g := GCD(a, b)
	if g == 0 {
		return 0
	}
	product := a * b
	if product < 0 {
		product = -product
	}
	return product / g
}

// Clamp restricts v to the interval [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PercentageOf returns what percentage of whole the part is
func PercentageOf(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, newError(KindDomain, "whole cannot be zero")
	}
	return (part / whole) * 100, nil
}

// Factorial returns n! for non-negative n
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, newError(KindDomain, "factorial is not defined for negative numbers")
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result, nil
}

// IsPrime reports whether n is a prime number
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Fibonacci returns the first n Fibonacci numbers
func Fibonacci(n int) []int64 {
	if n <= 0 {
		return nil
	}
	seq := make([]int64, n)
	seq[0] = 0
	if n > 1 {
		seq[1] = 1
		for i := 2; i < n; i++ {
			seq[i] = seq[i-1] + seq[i-2]
		}
	}
	return seq
}
