// Package cli implements the stepcalc command-line application: a small
// set of subcommands plus the interactive calculator loop.
package cli

import (
	"fmt"
	"os"

	"github.com/step-calc/stepcalc/internal/errors"
	"github.com/step-calc/stepcalc/internal/ui"
)

const (
	// Version is the application version
	Version = "0.2.0"
	// AppName is the application name
	AppName = "stepcalc"
)

// App is the CLI application
type App struct {
	helpSystem     *ui.HelpSystem
	commandHandler *CommandHandler
	formatter      *errors.Formatter
}

// NewApp creates the CLI application
func NewApp() *App {
	helpSystem := ui.NewHelpSystem(AppName, Version)
	return &App{
		helpSystem:     helpSystem,
		commandHandler: NewCommandHandler(helpSystem),
		formatter:      errors.NewFormatter(),
	}
}

// Run executes the application and returns the process exit code. With
// no arguments it enters the interactive calculator.
func (a *App) Run(args []string) int {
	if len(args) < 2 {
		repl := NewREPL(os.Stdin, os.Stdout)
		return repl.Run()
	}

	command := args[1]
	cmdArgs := args[2:]

	if err := a.commandHandler.Execute(command, cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, a.formatter.Format(err))
		return 1
	}
	return 0
}
