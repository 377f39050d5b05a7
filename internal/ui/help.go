// Package ui renders help and banner output for the stepcalc CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/step-calc/stepcalc/internal/utils"
)

// functionWhitelist is the full set of names the expression grammar accepts
var functionWhitelist = []string{
	"abs", "round", "sqrt", "log", "log10", "sin", "cos",
	"tan", "exp", "floor", "ceil", "pi", "e",
}

// HelpSystem renders CLI help screens
type HelpSystem struct {
	appName string
	version string
}

// NewHelpSystem creates a help system
func NewHelpSystem(appName, version string) *HelpSystem {
	return &HelpSystem{appName: appName, version: version}
}

// ShowMainHelp prints the top-level CLI help
func (h *HelpSystem) ShowMainHelp(w io.Writer) {
	fmt.Fprintf(w, `🧮 %s v%s - Step Calculator

A stateful calculator with step history, a memory register, and a safe
expression evaluator. Run without arguments for the interactive mode.

`, h.appName, h.version)

	fmt.Fprintf(w, `📖 Usage:
  %s                  start the interactive calculator
  %s <command> [args]

📋 Commands:
  eval <expression>   evaluate an expression and print the result
  solve <a> <b> <c>   solve a·x² + b·x + c = 0
  version             print the version
  help                show this help

`, h.appName, h.appName)

	h.showGrammar(w)

	fmt.Fprintf(w, `🚀 Examples:
  %s eval "(3 + 4) * 2"
  %s eval "sqrt(2) * sin(pi / 4)"
  %s solve 1 -5 6
`, h.appName, h.appName, h.appName)
}

// ShowBanner prints the interactive-mode banner with the REPL commands
func (h *HelpSystem) ShowBanner(w io.Writer) {
	fmt.Fprintf(w, `
  ╔══════════════════════════════════════════╗
  ║   %s · Calculator  v%-8s           ║
  ╠══════════════════════════════════════════╣
  ║  Commands                                ║
  ║  ─────────────────────────────────────   ║
  ║  <expr>      evaluate a math expression  ║
  ║  history     show step history           ║
  ║  undo        undo the last step          ║
  ║  reset       reset to 0                  ║
  ║  mem         show memory value           ║
  ║  ms          store result in memory      ║
  ║  mr          recall memory               ║
  ║  m+          add result to memory        ║
  ║  mc          clear memory                ║
  ║  precision n set display precision       ║
  ║  summary     show calculator state       ║
  ║  help        show this help              ║
  ║  exit        quit                        ║
  ╚══════════════════════════════════════════╝
`, h.appName, h.version)
}

// ShowVersion prints the version line
func (h *HelpSystem) ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s\n", h.appName, h.version)
}

// showGrammar prints the expression grammar and the identifier whitelist
func (h *HelpSystem) showGrammar(w io.Writer) {
	fmt.Fprintln(w, "✏️  Expressions:")
	fmt.Fprintln(w, "  operators: + - * / // % **  with parentheses and unary minus")
	fmt.Fprintln(w, "  functions and constants:")

	rows, err := utils.Chunk(functionWhitelist, 7)
	if err != nil {
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "    %s\n", strings.Join(row, ", "))
	}
	fmt.Fprintln(w)
}
