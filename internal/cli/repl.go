package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/step-calc/stepcalc/internal/errors"
	"github.com/step-calc/stepcalc/internal/ui"
	"github.com/step-calc/stepcalc/internal/utils"
	"github.com/step-calc/stepcalc/pkg/calc"
)

// REPL is the interactive calculator loop. One calculator instance
// lives for the duration of the session; every non-command line is
// evaluated as an expression against it.
type REPL struct {
	calc       *calc.Calculator
	reader     *bufio.Reader
	out        io.Writer
	formatter  *errors.Formatter
	helpSystem *ui.HelpSystem
}

// NewREPL creates a REPL reading from in and writing to out
func NewREPL(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		calc:       calc.New(),
		reader:     bufio.NewReader(in),
		out:        out,
		formatter:  errors.NewFormatterFor(out),
		helpSystem: ui.NewHelpSystem(AppName, Version),
	}
}

// Run drives the loop until exit or end of input, returning the exit code
func (r *REPL) Run() int {
	r.helpSystem.ShowBanner(r.out)
	fmt.Fprintf(r.out, "  Starting value: %s\n\n", calc.FormatFloat(r.calc.Result()))

	for {
		fmt.Fprint(r.out, "  calc> ")
		line, err := r.reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(r.out, "\n  Bye! 👋")
			return 0
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if r.dispatch(input) {
			return 0
		}
	}
}

// dispatch handles one input line, returning true when the session ends
func (r *REPL) dispatch(input string) bool {
	fields := strings.Fields(strings.ToLower(input))
	cmd := fields[0]

	switch cmd {
	case "exit", "quit", "q":
		fmt.Fprintln(r.out, "  Bye! 👋")
		return true
	case "help", "h", "?":
		r.helpSystem.ShowBanner(r.out)
	case "history":
		fmt.Fprintln(r.out, utils.FormatHistory(r.calc.History()))
	case "reset":
		r.calc.Reset(0)
		fmt.Fprintln(r.out, "  → Reset to 0")
	case "undo":
		if _, err := r.calc.Undo(); err != nil {
			r.printError(err)
		} else {
			r.printResult()
		}
	case "mem":
		fmt.Fprintf(r.out, "  Memory: %s\n", calc.FormatFloat(r.calc.Memory()))
	case "ms":
		r.calc.MemStore()
		fmt.Fprintf(r.out, "  Memory ← %s\n", calc.FormatFloat(r.calc.Result()))
	case "mr":
		r.calc.MemRecall()
		r.printResult()
	case "m+":
		r.calc.MemAdd()
		fmt.Fprintf(r.out, "  Memory: %s\n", calc.FormatFloat(r.calc.Memory()))
	case "mc":
		r.calc.MemClear()
		fmt.Fprintln(r.out, "  Memory cleared.")
	case "summary":
		fmt.Fprintln(r.out, r.calc.Summary())
	case "precision":
		r.setPrecision(fields[1:])
	default:
		if _, err := r.calc.Expr(input); err != nil {
			r.printError(err)
		} else {
			r.printResult()
		}
	}
	return false
}

// setPrecision updates the display precision from a command argument
func (r *REPL) setPrecision(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "  Usage: precision <digits>")
		return
	}
	digits, err := strconv.Atoi(args[0])
	if err != nil || digits < 0 {
		fmt.Fprintf(r.out, "  Invalid precision %q\n", args[0])
		return
	}
	r.calc.SetPrecision(digits)
	fmt.Fprintf(r.out, "  Precision set to %d digits\n", digits)
}

func (r *REPL) printResult() {
	fmt.Fprintf(r.out, "  → %s\n", calc.FormatFloat(r.calc.Result()))
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.out, "  ✗ %s\n", r.formatter.Format(err))
}
