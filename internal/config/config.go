// Package config loads the optional HCL settings file for drawpoker.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is looked for in the working directory when no path is given.
const DefaultFile = "drawpoker.hcl"

// Config represents the complete drawpoker configuration
type Config struct {
	Game  *GameSettings  `hcl:"game,block"`
	Log   *LogSettings   `hcl:"log,block"`
	Theme *ThemeSettings `hcl:"theme,block"`
}

// GameSettings controls how rounds are dealt
type GameSettings struct {
	Seed  int64  `hcl:"seed,optional"`
	Debug string `hcl:"debug,optional"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `hcl:"file,optional"`
	Level string `hcl:"level,optional"`
}

// ThemeSettings holds the colours used by the console front end
type ThemeSettings struct {
	RedSuit   string `hcl:"red_suit,optional"`
	BlackSuit string `hcl:"black_suit,optional"`
	Accent    string `hcl:"accent,optional"`
	Muted     string `hcl:"muted,optional"`
}

// Debug modes: ask before each round, always pick hands, or always deal.
const (
	DebugAsk = "ask"
	DebugOn  = "on"
	DebugOff = "off"
)

var hexColour = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Theme == nil {
		c.Theme = &ThemeSettings{}
	}

	if c.Game.Debug == "" {
		c.Game.Debug = DebugAsk
	}

	if c.Log.File == "" {
		c.Log.File = "drawpoker.log"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Theme.RedSuit == "" {
		c.Theme.RedSuit = "#FF6B6B"
	}
	if c.Theme.BlackSuit == "" {
		c.Theme.BlackSuit = "#FAFAFA"
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = "#7D56F4"
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = "#626262"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Game.Debug {
	case DebugAsk, DebugOn, DebugOff:
	default:
		return fmt.Errorf("invalid debug mode %q: want ask, on or off", c.Game.Debug)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	colours := map[string]string{
		"red_suit":   c.Theme.RedSuit,
		"black_suit": c.Theme.BlackSuit,
		"accent":     c.Theme.Accent,
		"muted":      c.Theme.Muted,
	}
	for name, v := range colours {
		if !hexColour.MatchString(v) {
			return fmt.Errorf("theme %s: invalid colour %q", name, v)
		}
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
