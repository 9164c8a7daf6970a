package cmd

import (
	stdcontext "context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/krlwerk/krlstyle/internal/version"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ stdcontext.Context, _ *cli.Command) error {
			fmt.Printf("krlstyle version %s", version.Version())
			if commit := version.Commit(); commit != "" {
				fmt.Printf(" (%s)", commit)
			}
			fmt.Printf(" %s\n", version.GoVersion())
			return nil
		},
	}
}
