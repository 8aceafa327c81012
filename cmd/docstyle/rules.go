package main

import (
	"context"

	"github.com/arjunmahishi/docstyle/docstyle"
	"github.com/arjunmahishi/docstyle/output"
	"github.com/urfave/cli/v3"
)

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "list the rules in evaluation order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Value:   output.FormatText,
				Usage:   "output format: text, json",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := output.New(output.Config{
				Format:  cmd.String("format"),
				NoColor: cmd.Bool("no-color"),
			})
			return w.WriteRules(docstyle.Rules())
		},
	}
}
