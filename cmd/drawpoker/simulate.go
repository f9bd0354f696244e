package main

import (
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/drawpoker/cmd/drawpoker/shared"
	"github.com/lox/drawpoker/internal/fileutil"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/simulator"
)

// SimulateCmd runs many rounds and reports outcome statistics
type SimulateCmd struct {
	Rounds  int    `default:"100000" help:"Number of rounds to simulate"`
	Workers int    `default:"0" help:"Parallel workers (0 for one per CPU)"`
	Seed    int64  `env:"DRAWPOKER_SEED" help:"RNG seed (0 seeds from the clock)"`
	Output  string `short:"o" type:"path" help:"Also write the report to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	level, err := shared.ParseLevel(g.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := shared.SetupLogger(os.Stderr, level, "simulate")

	seed := c.Seed
	if seed == 0 {
		seed = randutil.SeedFromClock(quartz.NewReal())
	}
	logger.Info("Starting simulation", "rounds", c.Rounds, "seed", seed)

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	stats, err := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Workers: c.Workers,
		Seed:    seed,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report := stats.Report()
	fmt.Print(report)

	if c.Output != "" {
		if err := fileutil.WriteFileAtomic(c.Output, []byte(report), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Wrote report", "file", c.Output)
	}
	return nil
}
