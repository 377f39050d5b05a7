// Package errors presents calculator failures to the terminal: a kind
// icon, a colored message, and a short suggestion for getting unstuck.
// The calc package itself never prints; all presentation lives here.
package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/step-calc/stepcalc/pkg/calc"
)

// Formatter renders errors for terminal output
type Formatter struct {
	colorEnabled bool
}

// NewFormatter creates a formatter with color enabled when stderr is a terminal
func NewFormatter() *Formatter {
	return NewFormatterFor(os.Stderr)
}

// NewFormatterFor creates a formatter with color enabled when w is a terminal
func NewFormatterFor(w io.Writer) *Formatter {
	colorEnabled := false
	if f, ok := w.(*os.File); ok {
		colorEnabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Formatter{colorEnabled: colorEnabled}
}

// SetColorEnabled overrides terminal detection
func (f *Formatter) SetColorEnabled(enabled bool) {
	f.colorEnabled = enabled
}

// Format renders an error as a display string
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var result strings.Builder
	if calcErr, ok := err.(*calc.CalcError); ok {
		f.formatCalcError(&result, calcErr)
	} else {
		result.WriteString(f.colorRed(fmt.Sprintf("❌ Error: %s", err.Error())))
	}
	return result.String()
}

func (f *Formatter) formatCalcError(result *strings.Builder, err *calc.CalcError) {
	icon := kindIcon(err.Kind)
	result.WriteString(f.colorRed(fmt.Sprintf("%s Error: %s", icon, err.Message)))

	if suggestion := kindSuggestion(err.Kind); suggestion != "" {
		result.WriteString(fmt.Sprintf("\n  %s %s", f.colorYellow("💡"), suggestion))
	}
}

// kindIcon returns the icon for an error kind
func kindIcon(kind calc.Kind) string {
	switch kind {
	case calc.KindDivisionByZero:
		return "➗"
	case calc.KindDomain:
		return "📐"
	case calc.KindNothingToUndo:
		return "↩️"
	case calc.KindInvalidExpression:
		return "📝"
	default:
		return "❌"
	}
}

// kindSuggestion returns a short hint for an error kind
func kindSuggestion(kind calc.Kind) string {
	switch kind {
	case calc.KindDivisionByZero:
		return "check that the divisor is not zero"
	case calc.KindDomain:
		return "check the input range of the operation"
	case calc.KindNothingToUndo:
		return "the history holds a single entry; perform an operation first"
	case calc.KindInvalidExpression:
		return "allowed: numbers, + - * / // % ** ( ) and abs, round, sqrt, log, log10, sin, cos, tan, exp, floor, ceil, pi, e"
	default:
		return ""
	}
}

func (f *Formatter) colorRed(text string) string {
	if !f.colorEnabled {
		return text
	}
	return fmt.Sprintf("\033[31m%s\033[0m", text)
}

func (f *Formatter) colorYellow(text string) string {
	if !f.colorEnabled {
		return text
	}
	return fmt.Sprintf("\033[33m%s\033[0m", text)
}
