package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rxtech-lab/argo-indicator/internal/version"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "argo-indicator",
		Usage:   "Replay bars through technical indicators and solve for target prices",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config `FILE`. Defaults are used when omitted",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the config log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			ratingsCommand(),
			solveCommand(),
			schemaCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
