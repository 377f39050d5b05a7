package cli

import (
	"fmt"
	"os"

	"github.com/step-calc/stepcalc/internal/ui"
)

// Command defines a CLI subcommand
type Command struct {
	Name        string
	Description string
	Handler     func(args []string) error
}

// CommandHandler registers and dispatches subcommands
type CommandHandler struct {
	commands   map[string]Command
	helpSystem *ui.HelpSystem

	evalHandler  *EvalHandler
	solveHandler *SolveHandler
}

// NewCommandHandler creates a command handler with all commands registered
func NewCommandHandler(helpSystem *ui.HelpSystem) *CommandHandler {
	ch := &CommandHandler{
		helpSystem: helpSystem,
		commands:   make(map[string]Command),
	}

	ch.evalHandler = NewEvalHandler()
	ch.solveHandler = NewSolveHandler()

	ch.registerCommands()
	return ch
}

// registerCommands registers all subcommands
func (ch *CommandHandler) registerCommands() {
	ch.commands = map[string]Command{
		"eval": {
			Name:        "eval",
			Description: "Evaluate an expression and print the result",
			Handler:     ch.evalHandler.Handle,
		},
		"solve": {
			Name:        "solve",
			Description: "Solve a quadratic equation a·x² + b·x + c = 0",
			Handler:     ch.solveHandler.Handle,
		},
		"repl": {
			Name:        "repl",
			Description: "Start the interactive calculator",
			Handler:     ch.handleREPL,
		},
		"version": {
			Name:        "version",
			Description: "Print the version",
			Handler:     ch.handleVersion,
		},
		"help": {
			Name:        "help",
			Description: "Show help",
			Handler:     ch.handleHelp,
		},
	}
}

// Execute runs the named subcommand
func (ch *CommandHandler) Execute(command string, args []string) error {
	cmd, ok := ch.commands[command]
	if !ok {
		ch.helpSystem.ShowMainHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
	return cmd.Handler(args)
}

func (ch *CommandHandler) handleREPL(args []string) error {
	repl := NewREPL(os.Stdin, os.Stdout)
	repl.Run()
	return nil
}

func (ch *CommandHandler) handleVersion(args []string) error {
	ch.helpSystem.ShowVersion(os.Stdout)
	return nil
}

func (ch *CommandHandler) handleHelp(args []string) error {
	ch.helpSystem.ShowMainHelp(os.Stdout)
	return nil
}
