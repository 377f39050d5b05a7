package calc

import (
	"errors"

	"github.com/step-calc/stepcalc/internal/expr"
)

// Expr evaluates a plain-text math expression. On success the result
// becomes the current value and a history step is recorded; the rounded
// result is returned. On failure the calculator is untouched.
func (c *Calculator) Expr(expression string) (float64, error) {
	result, err := expr.Eval(expression)
	if err != nil {
		return 0, translateExprError(expression, err)
	}
	c.apply(result)
	return c.Result(), nil
}

// Compute evaluates an expression against a fresh zero-valued
// calculator and returns the rounded result.
func Compute(expression string) (float64, error) {
	return New().Expr(expression)
}

// translateExprError maps evaluator failures onto the calculator's
// error domain, preserving the evaluator's message.
func translateExprError(expression string, err error) *CalcError {
	switch {
	case errors.Is(err, expr.ErrDivideByZero):
		return wrapError(err, KindDivisionByZero, "division by zero in expression")
	case errors.Is(err, expr.ErrDomain):
		return wrapError(err, KindDomain, "%v", err)
	default:
		return wrapError(err, KindInvalidExpression, "%v: %q", err, expression)
	}
}
