package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-indicator/internal/config"
	"github.com/rxtech-lab/argo-indicator/internal/feed"
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/logger"
	"github.com/rxtech-lab/argo-indicator/internal/ratings"
	"github.com/rxtech-lab/argo-indicator/internal/solver"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"d"},
			Usage:    "Bar `FILE` (.csv or .parquet)",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "symbol",
			Aliases: []string{"s"},
			Usage:   "Only read bars of this symbol",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Only replay the last N bars",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Show a progress bar while replaying",
		},
	}
}

// setup loads the config and builds the logger shared by every command.
func setup(cmd *cli.Command) (config.Config, *logger.Logger, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, nil, err
		}

		cfg = loaded
	}

	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}

	log, err := logger.NewLoggerWithLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}

	return cfg, log, nil
}

// openSource reads CSV files directly and everything else, or any symbol
// filtered read, through DuckDB.
func openSource(cmd *cli.Command, log *logger.Logger) (feed.Source, error) {
	path := cmd.String("data")
	symbol := cmd.String("symbol")

	if strings.EqualFold(filepath.Ext(path), ".csv") && symbol == "" {
		return feed.NewCSVSource(path)
	}

	var opts []feed.DuckDBOption
	if symbol != "" {
		opts = append(opts, feed.WithSymbol(symbol))
	}

	return feed.NewDuckDBSource(path, log, opts...)
}

// output is where results are printed. Logs go to stderr.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

func replay(ctx context.Context, cmd *cli.Command, log *logger.Logger, sink feed.Sink) error {
	source, err := openSource(cmd, log)
	if err != nil {
		return err
	}
	defer source.Close()

	var opts []feed.ReplayOption
	if limit := int(cmd.Int("limit")); limit > 0 {
		opts = append(opts, feed.WithLimit(limit))
	}

	if cmd.Bool("progress") {
		opts = append(opts, feed.WithProgress())
	}

	count, err := feed.Replay(ctx, source, sink, feed.All(), opts...)
	if err != nil {
		return err
	}

	log.Info("Replayed bars", zap.String("data", cmd.String("data")), zap.Int("count", count))

	if count == 0 {
		return errors.New(errors.ErrCodeEmptySeries, "no bars to replay")
	}

	return nil
}

func ratingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ratings",
		Usage: "Replay a feed and print the technical rating of the last bars",
		Flags: append(dataFlags(),
			&cli.IntFlag{
				Name:  "rows",
				Usage: "Number of trailing bars to print",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "votes",
				Usage: "Also print every indicator vote of the last bar",
			},
		),
		Action: ratingsAction,
	}
}

func ratingsAction(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	r, err := ratings.New(nil, cfg.Ratings)
	if err != nil {
		return err
	}
	defer r.Dispose()

	if err := replay(ctx, cmd, log, r); err != nil {
		return err
	}

	rows := int(cmd.Int("rows"))
	from := max(r.Len()-rows, 0)

	out := output(cmd)
	fmt.Fprintln(out, TitleStyle.Render("Technical ratings"))
	fmt.Fprintln(out, renderRatings(r, from))

	if cmd.Bool("votes") {
		fmt.Fprintln(out, TitleStyle.Render("Votes"))
		fmt.Fprintln(out, renderVotes(r.Votes(r.Len()-1)))
	}

	return nil
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Find the close of the last bar that reaches a rating or an RSI level",
		Flags: append(dataFlags(),
			&cli.StringFlag{
				Name:  "target",
				Usage: "Rating to reach (STRONG_SELL, SELL, NEUTRAL, BUY, STRONG_BUY)",
			},
			&cli.FloatFlag{
				Name:  "rsi-above",
				Usage: "Find the price at which the RSI rises to this level",
			},
			&cli.FloatFlag{
				Name:  "rsi-below",
				Usage: "Find the price at which the RSI falls to this level",
			},
		),
		Action: solveAction,
	}
}

func solveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	bars := indicator.NewBarIdentity(nil)
	defer bars.Dispose()

	r, err := ratings.New(indicator.Sourced(bars), cfg.Ratings)
	if err != nil {
		return err
	}
	defer r.Dispose()

	rsi, err := indicator.NewRSI(bars, cfg.Ratings.RSI)
	if err != nil {
		return err
	}
	defer rsi.Dispose()

	if err := replay(ctx, cmd, log, bars); err != nil {
		return err
	}

	var (
		objective solver.Objective
		goal      string
	)

	switch {
	case cmd.IsSet("target"):
		target, err := types.ParseAction(cmd.String("target"))
		if err != nil {
			return err
		}

		objective = solver.ReachAction(r, target)
		goal = "rating " + target.String()
	case cmd.IsSet("rsi-above"):
		level := cmd.Float("rsi-above")
		objective = solver.CrossAbove(rsi, types.NewValue(level))
		goal = fmt.Sprintf("RSI above %g", level)
	case cmd.IsSet("rsi-below"):
		level := cmd.Float("rsi-below")
		objective = solver.CrossBelow(rsi, types.NewValue(level))
		goal = fmt.Sprintf("RSI below %g", level)
	default:
		return errors.New(errors.ErrCodeMissingParameter, "one of --target, --rsi-above or --rsi-below is required")
	}

	opts := append(cfg.Solver.Options(), solver.WithLogger(log.Logger))
	result := solver.Solve(bars, objective, opts...)

	last, err := bars.SourceAt(bars.Len() - 1)
	if err != nil {
		return err
	}

	fmt.Fprintln(output(cmd), renderSolution(goal, last, result))

	return nil
}

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema of the config file",
		Action: func(_ context.Context, cmd *cli.Command) error {
			schema, err := config.Schema()
			if err != nil {
				return err
			}

			fmt.Fprintln(output(cmd), schema)

			return nil
		},
	}
}
