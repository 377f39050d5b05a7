package web

import (
	"errors"
	"fmt"

	"github.com/step-calc/stepcalc/pkg/calc"
)

// ErrBadOperation marks request-level failures of the op endpoint:
// unknown operation names and missing operands. Calculator failures
// keep their own error domain.
var ErrBadOperation = errors.New("bad operation")

// applyOp maps a wire operation name onto a calculator method. Callers
// hold the session lock.
func applyOp(c *calc.Calculator, op string, operand *float64) error {
	switch op {
	case "add", "subtract", "multiply", "divide", "modulo", "power", "round_to":
		if operand == nil {
			return fmt.Errorf("%w: %q requires an operand", ErrBadOperation, op)
		}
	}

	var err error
	switch op {
	case "add":
		c.Add(*operand)
	case "subtract":
		c.Subtract(*operand)
	case "multiply":
		c.Multiply(*operand)
	case "divide":
		_, err = c.Divide(*operand)
	case "modulo":
		_, err = c.Modulo(*operand)
	case "power":
		_, err = c.Power(*operand)
	case "round_to":
		c.RoundTo(int(*operand))
	case "negate":
		c.Negate()
	case "absolute":
		c.Absolute()
	case "sqrt":
		_, err = c.Sqrt()
	case "log":
		if operand != nil {
			_, err = c.Log(*operand)
		} else {
			_, err = c.Log()
		}
	case "log10":
		_, err = c.Log10()
	case "sin":
		c.Sin()
	case "cos":
		c.Cos()
	case "tan":
		c.Tan()
	case "exp":
		c.Exp()
	case "floor":
		c.Floor()
	case "ceil":
		c.Ceil()
	case "percent":
		c.Percent()
	case "undo":
		_, err = c.Undo()
	case "reset":
		value := 0.0
		if operand != nil {
			value = *operand
		}
		c.Reset(value)
	case "clear_history":
		c.ClearHistory()
	case "mem_store":
		c.MemStore()
	case "mem_recall":
		c.MemRecall()
	case "mem_add":
		c.MemAdd()
	case "mem_clear":
		c.MemClear()
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrBadOperation, op)
	}
	return err
}
