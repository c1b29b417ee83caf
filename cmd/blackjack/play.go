package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#2E7D32")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs an interactive game
type PlayCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" help:"Table configuration file (defaults apply if missing)"`
	Seed    int64  `env:"BLACKJACK_SEED" help:"RNG seed, overrides the config (0 for random)"`
	Players int    `short:"p" help:"Seat this many human players instead of the configured ones"`
	Decks   int    `help:"Number of decks in the shoe, overrides the config"`
	Clear   bool   `help:"Clear the screen before each redraw"`
	Debug   bool   `help:"Enable debug logging"`
	JSONLog bool   `name:"json-log" help:"Write logs as JSON"`
	LogFile string `default:"blackjack.log" env:"BLACKJACK_LOG_FILE" help:"Log file, empty for stderr"`
}

func (c *PlayCmd) Run() error {
	logger, closeLog, err := setupLogger(c.Debug, c.JSONLog, c.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Table.Seed
	}
	seed = randutil.Seed(seed)
	rng := randutil.New(seed)

	game, err := blackjack.NewGame(rng, cfg.Seats(), cfg.GameOptions()...)
	if err != nil {
		return err
	}
	logger.Info("Starting game", "game", game.ID, "seed", seed, "seats", cfg.Seats(), "decks", cfg.Table.Decks)
	if !cfg.HasHumans() {
		logger.Info("No human seats, bots play until the round limit or the table stalls", "max_rounds", cfg.Table.MaxRounds)
	}

	human := agent.NewHuman(os.Stdin, os.Stdout)
	defer human.Close()
	agents, err := buildAgents(cfg, seed, human, logger)
	if err != nil {
		return err
	}

	var renderOpts []display.Option
	if c.Clear || cfg.Table.ClearScreen {
		renderOpts = append(renderOpts, display.WithClearScreen())
	}
	renderer := display.New(os.Stdout, renderOpts...)

	opts := append(cfg.EngineOptions(),
		blackjack.WithLogger(logger),
		blackjack.WithObserver(renderer),
	)
	engine, err := blackjack.NewEngine(game, agents, opts...)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))

	ctx := setupSignalHandler(logger)
	summary, err := engine.Run(ctx)
	if summary != nil {
		fmt.Print(renderer.Summary(summary))
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyOverrides folds command line flags into the loaded table.
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Decks > 0 {
		cfg.Table.Decks = c.Decks
	}
	if c.Players > 0 {
		cfg.Players = make([]config.PlayerConfig, c.Players)
		for i := range cfg.Players {
			cfg.Players[i] = config.PlayerConfig{
				Name:  fmt.Sprintf("Player %d", i+1),
				Agent: agent.KindHuman,
				Cash:  cfg.Table.StartingCash,
			}
		}
	}
}
