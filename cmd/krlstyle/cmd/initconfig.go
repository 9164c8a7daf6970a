package cmd

import (
	stdcontext "context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/krlwerk/krlstyle/internal/config"
)

func generateConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate-config",
		Usage: "Write the default configuration to ./krlstyle.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Destination path",
				Value:   "krlstyle.toml",
			},
		},
		Action: func(_ stdcontext.Context, cmd *cli.Command) error {
			path := cmd.String("output")
			if err := config.WriteDefault(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return cli.Exit("", ExitConfigError)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}
