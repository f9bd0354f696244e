package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/drawpoker/cmd/drawpoker/shared"
	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/tui"
)

// PlayCmd runs the interactive console game
type PlayCmd struct {
	Seed    int64  `env:"DRAWPOKER_SEED" help:"Deterministic RNG seed (0 seeds from the clock)"`
	Debug   string `placeholder:"MODE" help:"Pick hands by hand: ask, on or off"`
	LogFile string `type:"path" env:"DRAWPOKER_LOG_FILE" help:"Log file (the console owns the terminal)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.Debug != "" {
		cfg.Game.Debug = c.Debug
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	logger := shared.SetupLogger(logFile, cfg.LogLevel(), "drawpoker")
	logger.Info("Starting game", "version", version, "debug", cfg.Game.Debug)

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	session := game.NewSession(quartz.NewReal(), cfg.Game.Seed, logger)
	model := tui.New(session, logger, tui.Options{
		DebugMode: cfg.Game.Debug,
		Theme:     cfg.Theme,
	})

	if err := tui.Run(model, tea.WithAltScreen()); err != nil {
		logger.Error("Console exited with error", "error", err)
		return err
	}

	fmt.Printf("Played %d rounds: won %d, lost %d, tied %d (seed %d)\n",
		session.Rounds, session.PlayerWins, session.DealerWins, session.Ties, session.Seed())
	return nil
}

// loadConfig reads the HCL file and applies the global log level flag.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	return cfg, nil
}
