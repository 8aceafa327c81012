package main

import (
	"context"
	"errors"
	"os"

	"github.com/arjunmahishi/docstyle/output"
	"github.com/urfave/cli/v3"
)

// errFindings makes the process exit non-zero without printing an error.
var errFindings = errors.New("diagnostics reported")

func main() {
	app := &cli.Command{
		Name:  "docstyle",
		Usage: "check Python docstrings against a single Google-style convention",
		Commands: []*cli.Command{
			checkCommand(),
			rulesCommand(),
			outlineCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errFindings) {
			output.WriteError(err)
		}
		os.Exit(1)
	}
}
