package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillpath/dijkstra"
	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/katalvlaran/hillpath/lowpoint"
	"github.com/katalvlaran/hillpath/report"
)

// errUsage marks invocation mistakes: wrong argument count or bad flag values.
var errUsage = errors.New("hillpath: usage")

// newCommand builds the root command. logger receives diagnostics; answers go
// to the command's Writer.
func newCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "hillpath",
		Usage:     "shortest climbing routes on an elevation grid",
		ArgsUsage: "<input-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "strategy",
				Value:   dijkstra.StrategyHeap.String(),
				Usage:   "cell selection policy: heap or scan",
				Sources: cli.EnvVars("HILLPATH_STRATEGY"),
			},
			&cli.StringFlag{
				Name:    "mode",
				Value:   lowpoint.ModeFanout.String(),
				Usage:   "low point evaluation: fanout (one search per candidate) or reverse (one field)",
				Sources: cli.EnvVars("HILLPATH_MODE"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   runtime.NumCPU(),
				Usage:   "concurrent candidate searches in fanout mode",
				Sources: cli.EnvVars("HILLPATH_WORKERS"),
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   report.FormatText.String(),
				Usage:   "output format: text, json or yaml",
				Sources: cli.EnvVars("HILLPATH_FORMAT"),
			},
			&cli.BoolFlag{
				Name:    "path",
				Usage:   "include the S to E route in json/yaml output",
				Sources: cli.EnvVars("HILLPATH_PATH"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   logrus.WarnLevel.String(),
				Usage:   "panic, fatal, error, warn, info, debug or trace",
				Sources: cli.EnvVars("HILLPATH_LOG_LEVEL"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "abort both searches after this long (0 disables)",
				Sources: cli.EnvVars("HILLPATH_TIMEOUT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, logger)
		},
	}
}

// settings are the validated flag values of one run.
type settings struct {
	input    string
	strategy dijkstra.Strategy
	mode     lowpoint.Mode
	format   report.Format
	workers  int
	withPath bool
}

func parseSettings(cmd *cli.Command, logger *logrus.Logger) (settings, error) {
	var s settings
	if cmd.Args().Len() != 1 {
		return s, fmt.Errorf("%w: expected exactly one input file, got %d arguments", errUsage, cmd.Args().Len())
	}
	s.input = cmd.Args().First()

	level, err := logrus.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return s, fmt.Errorf("%w: %v", errUsage, err)
	}
	logger.SetLevel(level)

	if s.strategy, err = dijkstra.ParseStrategy(cmd.String("strategy")); err != nil {
		return s, err
	}
	if s.mode, err = lowpoint.ParseMode(cmd.String("mode")); err != nil {
		return s, err
	}
	if s.format, err = report.ParseFormat(cmd.String("format")); err != nil {
		return s, err
	}
	s.workers = cmd.Int("workers")
	s.withPath = cmd.Bool("path")
	return s, nil
}

// run loads the grid, answers both queries and writes the report.
func run(ctx context.Context, cmd *cli.Command, logger *logrus.Logger) error {
	s, err := parseSettings(cmd, logger)
	if err != nil {
		return err
	}
	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log := logger.WithField("input", s.input)
	grid, err := heightmap.Load(s.input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":       grid.Width,
		"height":      grid.Height,
		"origin":      grid.Origin.String(),
		"destination": grid.Destination.String(),
	}).Info("grid loaded")

	pathOpts := []dijkstra.Option{dijkstra.WithStrategy(s.strategy), dijkstra.WithContext(ctx)}
	if s.withPath {
		pathOpts = append(pathOpts, dijkstra.WithReturnPath())
	}
	pf, err := dijkstra.NewPathFinder(grid, pathOpts...)
	if err != nil {
		return err
	}
	first, err := pf.Search(grid.Origin)
	if err != nil {
		return fmt.Errorf("part 1: %w", err)
	}
	if !first.Reached {
		return fmt.Errorf("part 1: %w from %v", dijkstra.ErrUnreachable, grid.Origin)
	}
	log.WithFields(logrus.Fields{"distance": first.Distance, "visited": first.Visited}).Info("part 1 solved")

	low, err := lowpoint.Search(grid,
		lowpoint.WithContext(ctx),
		lowpoint.WithMode(s.mode),
		lowpoint.WithWorkers(s.workers),
		lowpoint.WithPathOptions(dijkstra.WithStrategy(s.strategy)),
		lowpoint.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("part 2: %w", err)
	}
	log.WithFields(logrus.Fields{"distance": low.Distance, "from": low.From.String()}).Info("part 2 solved")

	answers := report.Answers{
		Part1:       first.Distance,
		Part2:       low.Distance,
		Width:       grid.Width,
		Height:      grid.Height,
		Origin:      report.PointOf(grid.Origin),
		Destination: report.PointOf(grid.Destination),
		BestStart:   report.PointOf(low.From),
		Candidates:  low.Candidates,
		Strategy:    s.strategy.String(),
		Mode:        s.mode.String(),
	}
	for _, c := range first.Path {
		answers.Route = append(answers.Route, report.PointOf(c))
	}
	return report.Write(cmd.Writer, s.format, answers)
}
