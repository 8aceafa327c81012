package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/arjunmahishi/docstyle/docstyle"
	"github.com/arjunmahishi/docstyle/output"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "check docstrings of the given files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .docstyle.yaml or pyproject.toml file",
			},
			&cli.StringSliceFlag{
				Name:  "select",
				Usage: "only report these codes or code prefixes",
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "do not report these codes or code prefixes",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "output format: text, json",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize json output",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug information to stderr",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	log := newLogger(cmd.Bool("verbose"))

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("at least one file is required")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	log.Debug().
		Strs("select", opts.Select).
		Strs("ignore", opts.Ignore).
		Strs("skip_prefixes", opts.SkipPrefixes).
		Str("format", opts.Format).
		Msg("options resolved")

	checker := docstyle.NewChecker(opts)

	var (
		results []docstyle.Result
		failed  bool
		found   int
	)
	for _, file := range files {
		if !docstyle.Supported(file) {
			log.Debug().Str("file", file).Strs("languages", docstyle.List()).Msg("unsupported extension, skipping")
			continue
		}

		res, err := checker.CheckFile(ctx, file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("check failed")
			failed = true
			continue
		}
		if res.Skipped {
			log.Debug().Str("file", file).Msg("skipped by prefix")
			continue
		}

		log.Debug().Str("file", file).Int("diagnostics", len(res.Diagnostics)).Msg("checked")
		found += len(res.Diagnostics)
		results = append(results, res)
	}

	w := output.New(output.Config{
		Format:  opts.Format,
		Compact: cmd.Bool("compact"),
		NoColor: cmd.Bool("no-color"),
	})
	if err := w.WriteResults(results); err != nil {
		return err
	}

	if failed || found > 0 {
		return errFindings
	}
	return nil
}

// resolveOptions layers command-line flags over the project configuration.
func resolveOptions(cmd *cli.Command) (docstyle.Options, error) {
	opts, err := docstyle.LoadConfig(".", cmd.String("config"))
	if err != nil {
		return docstyle.Options{}, err
	}

	if cmd.IsSet("select") {
		opts.Select = splitCodes(cmd.StringSlice("select"))
	}
	if cmd.IsSet("ignore") {
		opts.Ignore = splitCodes(cmd.StringSlice("ignore"))
	}
	if cmd.IsSet("format") {
		opts.Format = cmd.String("format")
	}

	if err := opts.Validate(); err != nil {
		return docstyle.Options{}, err
	}
	return opts, nil
}

// splitCodes accepts both repeated flags and comma separated lists.
func splitCodes(values []string) []string {
	var codes []string
	for _, v := range values {
		for _, code := range strings.Split(v, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
