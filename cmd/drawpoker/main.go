package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" type:"path" default:"drawpoker.hcl" env:"DRAWPOKER_CONFIG" help:"HCL config file (ignored if missing)"`
	LogLevel string `env:"DRAWPOKER_LOG_LEVEL" help:"Log level: debug, info, warn, error"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable colours"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play five card draw against the dealer"`
	Eval     EvalCmd          `cmd:"" help:"Rank hands given as card codes and pick a winner"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate rounds with random discards and report rank frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Five card draw against a computer dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
