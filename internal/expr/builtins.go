package expr

import (
	"fmt"
	"math"
)

// builtin describes a whitelisted function: its accepted argument count
// range and its implementation over already-evaluated arguments.
type builtin struct {
	minArgs int
	maxArgs int
	apply   func(args []float64) (float64, error)
}

func (b builtin) arity() string {
	if b.minArgs == b.maxArgs {
		if b.minArgs == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", b.minArgs)
	}
	return fmt.Sprintf("%d to %d arguments", b.minArgs, b.maxArgs)
}

// constants is the identifier whitelist for named values
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// builtins is the identifier whitelist for functions
var builtins = map[string]builtin{
	"abs":   unary(func(x float64) (float64, error) { return math.Abs(x), nil }),
	"sin":   unary(func(x float64) (float64, error) { return math.Sin(x), nil }),
	"cos":   unary(func(x float64) (float64, error) { return math.Cos(x), nil }),
	"tan":   unary(func(x float64) (float64, error) { return math.Tan(x), nil }),
	"exp":   unary(func(x float64) (float64, error) { return math.Exp(x), nil }),
	"floor": unary(func(x float64) (float64, error) { return math.Floor(x), nil }),
	"ceil":  unary(func(x float64) (float64, error) { return math.Ceil(x), nil }),
	"sqrt": unary(func(x float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("%w: cannot take sqrt of negative number %g", ErrDomain, x)
		}
		return math.Sqrt(x), nil
	}),
	"log10": unary(func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("%w: logarithm undefined for non-positive values", ErrDomain)
		}
		return math.Log10(x), nil
	}),
	"log": {
		minArgs: 1,
		maxArgs: 2,
		apply: func(args []float64) (float64, error) {
			x := args[0]
			if x <= 0 {
				return 0, fmt.Errorf("%w: logarithm undefined for non-positive values", ErrDomain)
			}
			if len(args) == 1 {
				return math.Log(x), nil
			}
			base := args[1]
			if base <= 0 || base == 1 {
				return 0, fmt.Errorf("%w: logarithm base must be positive and not 1", ErrDomain)
			}
			return math.Log(x) / math.Log(base), nil
		},
	},
	"round": {
		minArgs: 1,
		maxArgs: 2,
		apply: func(args []float64) (float64, error) {
			if len(args) == 1 {
				return math.Round(args[0]), nil
			}
			pow := math.Pow(10, math.Trunc(args[1]))
			return math.Round(args[0]*pow) / pow, nil
		},
	},
}

// unary wraps a single-argument function into a builtin
func unary(fn func(float64) (float64, error)) builtin {
	return builtin{
		minArgs: 1,
		maxArgs: 1,
		apply: func(args []float64) (float64, error) {
			return fn(args[0])
		},
	}
}

// flooredMod returns the remainder of a/b with the sign of b
func flooredMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
