package utils

import (
	"fmt"
	"strings"

	"github.com/step-calc/stepcalc/pkg/calc"
)

// FormatHistory renders history entries one per line, oldest first,
// marking the current value.
func FormatHistory(history []float64) string {
	if len(history) == 0 {
		return "  (empty)"
	}

	var b strings.Builder
	for i, v := range history {
		marker := " "
		if i == len(history)-1 {
			marker = "▶"
		}
		fmt.Fprintf(&b, "  %s [%3d]  %s\n", marker, i, calc.FormatFloat(v))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatComplex renders a complex number, omitting a zero imaginary part
func FormatComplex(v complex128) string {
	if imag(v) == 0 {
		return calc.FormatFloat(real(v))
	}
	if imag(v) < 0 {
		return fmt.Sprintf("%s-%si", calc.FormatFloat(real(v)), calc.FormatFloat(-imag(v)))
	}
	return fmt.Sprintf("%s+%si", calc.FormatFloat(real(v)), calc.FormatFloat(imag(v)))
}
