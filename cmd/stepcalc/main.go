package main

import (
	"os"

	"github.com/step-calc/stepcalc/internal/cli"
)

// main is the application entry point
func main() {
	app := cli.NewApp()
	os.Exit(app.Run(os.Args))
}
