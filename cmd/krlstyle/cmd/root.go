// Package cmd implements the krlstyle command line interface.
package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/krlwerk/krlstyle/internal/version"
)

// NewApp creates the CLI application.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "krlstyle",
		Usage:   "A style checker and auto-fixer for KUKA Robot Language",
		Version: version.Version(),
		Description: `krlstyle checks KRL source files (.src, .dat, .sub) against a set of
style rules and can rewrite the files to fix what it found.

Examples:
  krlstyle lint program.src
  krlstyle lint --fix src/
  krlstyle generate-config`,
		Commands: []*cli.Command{
			lintCommand(),
			generateConfigCommand(),
			versionCommand(),
		},
	}
}

// Execute runs the CLI application.
func Execute() error {
	return NewApp().Run(context.Background(), os.Args)
}
