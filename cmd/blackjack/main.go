package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Play        PlayCmd          `cmd:"" default:"withargs" help:"Play blackjack at the terminal"`
	Simulate    SimulateCmd      `cmd:"" help:"Play many bot-only games and report per-seat statistics"`
	CheckConfig CheckConfigCmd   `cmd:"check-config" help:"Validate a table configuration file"`
}

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Turn-based blackjack against a dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
