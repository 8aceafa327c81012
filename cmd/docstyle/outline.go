package main

import (
	"context"
	"errors"

	"github.com/arjunmahishi/docstyle/docstyle"
	"github.com/arjunmahishi/docstyle/output"
	"github.com/urfave/cli/v3"
)

func outlineCommand() *cli.Command {
	return &cli.Command{
		Name:  "outline",
		Usage: "print the class and function records docstyle checks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "file to analyze (required)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
		},
		Action: runOutline,
	}
}

func runOutline(ctx context.Context, cmd *cli.Command) error {
	file := cmd.String("file")
	if file == "" {
		return errors.New("--file is required")
	}

	decls, err := docstyle.NewChecker(docstyle.Options{}).Outline(ctx, file)
	if err != nil {
		return err
	}

	w := output.New(output.Config{
		Format:  output.FormatJSON,
		Compact: cmd.Bool("compact"),
	})
	return w.WriteDeclarations(file, decls)
}
