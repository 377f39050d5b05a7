package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/step-calc/stepcalc/internal/utils"
	"github.com/step-calc/stepcalc/pkg/calc"
)

// EvalHandler implements the eval subcommand
type EvalHandler struct{}

// NewEvalHandler creates an eval handler
func NewEvalHandler() *EvalHandler {
	return &EvalHandler{}
}

// Handle evaluates the expression given as arguments
func (h *EvalHandler) Handle(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s eval <expression>", AppName)
	}

	result, err := calc.Compute(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println(calc.FormatFloat(result))
	return nil
}

// SolveHandler implements the solve subcommand
type SolveHandler struct{}

// NewSolveHandler creates a solve handler
func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

// Handle solves the quadratic equation given by three coefficients
func (h *SolveHandler) Handle(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: %s solve <a> <b> <c>", AppName)
	}

	coeffs := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid coefficient %q", arg)
		}
		coeffs[i] = v
	}

	roots, err := calc.SolveQuadratic(coeffs[0], coeffs[1], coeffs[2])
	if err != nil {
		return err
	}

	fmt.Printf("x1 = %s\n", utils.FormatComplex(roots.X1))
	fmt.Printf("x2 = %s\n", utils.FormatComplex(roots.X2))
	return nil
}
