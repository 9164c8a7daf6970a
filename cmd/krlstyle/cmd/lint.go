package cmd

import (
	stdcontext "context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/krlwerk/krlstyle/internal/config"
	"github.com/krlwerk/krlstyle/internal/discovery"
	"github.com/krlwerk/krlstyle/internal/linter"
	"github.com/krlwerk/krlstyle/internal/reporter"
	"github.com/krlwerk/krlstyle/internal/rules/krl"
)

// Exit codes
const (
	ExitSuccess     = 0 // No findings
	ExitFindings    = 1 // Findings reported
	ExitConfigError = 2 // Configuration or I/O error
	ExitNoFiles     = 3 // No KRL files found
)

func lintCommand() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "Check KRL file(s) for style issues",
		ArgsUsage: "[TARGET...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover)",
			},
			&cli.BoolFlag{
				Name:    "fix",
				Usage:   "Rewrite files to fix reported issues",
				Sources: cli.EnvVars("KRLSTYLE_FIX"),
			},
			&cli.StringFlag{
				Name:    "reporter",
				Aliases: []string{"r"},
				Usage:   "Output format: text, colorized",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "Disable colored output",
				Sources: cli.EnvVars("NO_COLOR"),
			},
			&cli.StringSliceFlag{
				Name:  "disable",
				Usage: "Issue code to suppress (can be repeated)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Glob pattern to exclude files (can be repeated)",
			},
		},
		Action: runLint,
	}
}

func runLint(_ stdcontext.Context, cmd *cli.Command) error {
	targets := cmd.Args().Slice()
	if len(targets) == 0 {
		targets = []string{"."}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	files, err := discovery.Discover(targets, discovery.Options{
		ExcludePatterns: cmd.StringSlice("exclude"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, fs.ErrNotExist) {
			return cli.Exit("", ExitNoFiles)
		}
		return cli.Exit("", ExitConfigError)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no KRL files found in %v\n", targets)
		return cli.Exit("", ExitNoFiles)
	}

	rep, err := reporter.New(cfg.Reporter, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	lint := linter.New(cfg, krl.NewDefaultRegistry(), rep, linter.Options{
		Fix: cmd.Bool("fix"),
		Log: log,
	})

	summary := lint.Run(files)
	if summary.Files == 0 {
		return cli.Exit("", ExitConfigError)
	}
	if summary.Findings > 0 {
		return cli.Exit("", ExitFindings)
	}
	return nil
}

// resolveConfig loads the configuration and layers the lint flags on top.
func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if rep := cmd.String("reporter"); rep != "" {
		cfg.Reporter = rep
	}
	cfg.Disable = append(cfg.Disable, cmd.StringSlice("disable")...)

	if cfg.Reporter == reporter.ColorizedReporterName && !colorAllowed(cmd) {
		cfg.Reporter = reporter.TextReporterName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func colorAllowed(cmd *cli.Command) bool {
	if cmd.Bool("no-color") || termenv.EnvNoColor() {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
