// Package calc implements a stateful calculator with step history, a
// memory register, a safe expression evaluator, and a set of pure math
// helpers.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPrecision is the number of decimal digits used for the rounded result view
	DefaultPrecision = 10
)

// Calculator tracks a running value, the ordered history of every value
// it has held, and an independent memory register. The history is never
// empty and its last entry always equals the current value after a
// mutating operation. Mutating operations return the receiver so calls
// can be chained; fallible operations return an error instead and leave
// the state untouched on failure.
//
// A Calculator is not safe for concurrent use; callers needing shared
// access must serialize externally.
type Calculator struct {
	value     float64
	history   []float64
	memory    float64
	precision int
}

// Option configures a new Calculator
type Option func(*Calculator)

// WithInitial sets the starting value (default 0)
func WithInitial(v float64) Option {
	return func(c *Calculator) {
		c.value = v
	}
}

// WithPrecision sets the number of decimal digits of the rounded result view (default 10)
func WithPrecision(p int) Option {
	return func(c *Calculator) {
		c.precision = p
	}
}

// New creates a Calculator with a single-entry history
func New(opts ...Option) *Calculator {
	c := &Calculator{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(c)
	}
	c.history = []float64{c.value}
	return c
}

// apply commits a computed value: it becomes the current value and is
// appended to the history. Callers must validate before applying.
func (c *Calculator) apply(result float64) *Calculator {
	c.value = result
	c.history = append(c.history, result)
	return c
}

// Result returns the current value rounded to the configured precision
func (c *Calculator) Result() float64 {
	return roundTo(c.value, c.precision)
}

// Value returns the current value without rounding
func (c *Calculator) Value() float64 {
	return c.value
}

// History returns a snapshot of the value history, oldest first
func (c *Calculator) History() []float64 {
	snapshot := make([]float64, len(c.history))
	copy(snapshot, c.history)
	return snapshot
}

// Memory returns the memory register
func (c *Calculator) Memory() float64 {
	return c.memory
}

// Precision returns the configured display precision
func (c *Calculator) Precision() int {
	return c.precision
}

// SetPrecision changes the display precision. It affects only the
// rounded result view, never the stored value or history.
func (c *Calculator) SetPrecision(p int) {
	c.precision = p
}

// Steps returns the number of history entries
func (c *Calculator) Steps() int {
	return len(c.history)
}

// Add adds n to the current value
func (c *Calculator) Add(n float64) *Calculator {
	return c.apply(c.value + n)
}

// Subtract subtracts n from the current value
func (c *Calculator) Subtract(n float64) *Calculator {
	return c.apply(c.value - n)
}

// Multiply multiplies the current value by n
func (c *Calculator) Multiply(n float64) *Calculator {
	return c.apply(c.value * n)
}

// Divide divides the current value by n
func (c *Calculator) Divide(n float64) (*Calculator, error) {
	if n == 0 {
		return nil, newError(KindDivisionByZero, "division by zero is undefined")
	}
	return c.apply(c.value / n), nil
}

// Modulo sets the current value to the floored remainder of dividing it
// by n, so the result carries the sign of n.
func (c *Calculator) Modulo(n float64) (*Calculator, error) {
	if n == 0 {
		return nil, newError(KindDivisionByZero, "modulo by zero is undefined")
	}
	return c.apply(flooredMod(c.value, n)), nil
}

// Power raises the current value to the power of exp
func (c *Calculator) Power(exp float64) (*Calculator, error) {
	result := math.Pow(c.value, exp)
	if math.IsNaN(result) && !math.IsNaN(c.value) && !math.IsNaN(exp) {
		return nil, newError(KindDomain, "cannot raise %s to the power %s", FormatFloat(c.value), FormatFloat(exp))
	}
	return c.apply(result), nil
}

// Negate negates the current value
func (c *Calculator) Negate() *Calculator {
	return c.apply(-c.value)
}

// Absolute takes the absolute value
func (c *Calculator) Absolute() *Calculator {
	return c.apply(math.Abs(c.value))
}

// Sqrt takes the square root of the current value
func (c *Calculator) Sqrt() (*Calculator, error) {
	if c.value < 0 {
		return nil, newError(KindDomain, "cannot take sqrt of negative number %s", FormatFloat(c.value))
	}
	return c.apply(math.Sqrt(c.value)), nil
}

// Log takes the logarithm of the current value. With no argument the
// base is e; a single argument selects the base.
func (c *Calculator) Log(base ...float64) (*Calculator, error) {
	if c.value <= 0 {
		return nil, newError(KindDomain, "logarithm undefined for non-positive values")
	}
	if len(base) == 0 {
		return c.apply(math.Log(c.value)), nil
	}
	b := base[0]
	if b <= 0 || b == 1 {
		return nil, newError(KindDomain, "logarithm base must be positive and not 1")
	}
	return c.apply(math.Log(c.value) / math.Log(b)), nil
}

// Log10 takes the base-10 logarithm of the current value
func (c *Calculator) Log10() (*Calculator, error) {
	return c.Log(10)
}

// Sin takes the sine of the current value (radians)
func (c *Calculator) Sin() *Calculator {
	return c.apply(math.Sin(c.value))
}

// Cos takes the cosine of the current value (radians)
func (c *Calculator) Cos() *Calculator {
	return c.apply(math.Cos(c.value))
}

// Tan takes the tangent of the current value (radians)
func (c *Calculator) Tan() *Calculator {
	return c.apply(math.Tan(c.value))
}

// Exp raises e to the current value
func (c *Calculator) Exp() *Calculator {
	return c.apply(math.Exp(c.value))
}

// Floor rounds the current value down
func (c *Calculator) Floor() *Calculator {
	return c.apply(math.Floor(c.value))
}

// Ceil rounds the current value up
func (c *Calculator) Ceil() *Calculator {
	return c.apply(math.Ceil(c.value))
}

// RoundTo rounds the current value to the given decimal places
func (c *Calculator) RoundTo(decimals int) *Calculator {
	return c.apply(roundTo(c.value, decimals))
}

// Percent divides the current value by 100
func (c *Calculator) Percent() *Calculator {
	return c.apply(c.value / 100)
}

// MemStore copies the current value into the memory register. The
// history is not touched.
func (c *Calculator) MemStore() *Calculator {
	c.memory = c.value
	return c
}

// MemRecall copies the memory register into the current value and
// records the recalled value as a history step.
func (c *Calculator) MemRecall() *Calculator {
	return c.apply(c.memory)
}

// MemAdd accumulates the current value into the memory register
func (c *Calculator) MemAdd() *Calculator {
	c.memory += c.value
	return c
}

// MemClear resets the memory register to 0
func (c *Calculator) MemClear() *Calculator {
	c.memory = 0
	return c
}

// Undo removes the most recent history entry and restores the current
// value to the entry before it. The history never shrinks below one
// entry.
func (c *Calculator) Undo() (*Calculator, error) {
	if len(c.history) < 2 {
		return nil, newError(KindNothingToUndo, "nothing to undo")
	}
	c.history = c.history[:len(c.history)-1]
	c.value = c.history[len(c.history)-1]
	return c, nil
}

// Reset replaces the history with a single entry equal to value
func (c *Calculator) Reset(value float64) *Calculator {
	c.value = value
	c.history = []float64{value}
	return c
}

// ClearHistory discards all intermediate steps, keeping the current
// value as the sole history entry.
func (c *Calculator) ClearHistory() *Calculator {
	c.history = []float64{c.value}
	return c
}

// Equal reports whether two calculators hold the same raw value
func (c *Calculator) Equal(other *Calculator) bool {
	return other != nil && c.value == other.value
}

// Summary returns a boxed human-readable state summary
func (c *Calculator) Summary() string {
	lines := []string{
		"┌─────────────────────────────┐",
		fmt.Sprintf("│  Result  : %-17s│", FormatFloat(c.Result())),
		fmt.Sprintf("│  Memory  : %-17s│", FormatFloat(c.memory)),
		fmt.Sprintf("│  Steps   : %-17d│", len(c.history)),
		"└─────────────────────────────┘",
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (c *Calculator) String() string {
	return fmt.Sprintf("Calculator(result=%s, steps=%d)", FormatFloat(c.Result()), len(c.history))
}

// FormatFloat renders a float64 in its shortest exact form
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// roundTo rounds half away from zero at the given decimal place
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// flooredMod returns the remainder of a/b with the sign of b
func flooredMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
