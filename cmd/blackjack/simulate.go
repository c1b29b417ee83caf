package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays bot-only games and prints per-seat statistics
type SimulateCmd struct {
	Games   int    `short:"n" default:"1000" help:"Number of games to simulate"`
	Workers int    `short:"w" help:"Parallel workers (0 for one per CPU)"`
	Seed    int64  `env:"BLACKJACK_SEED" help:"RNG seed (0 for random)"`
	Config  string `short:"c" env:"BLACKJACK_CONFIG" help:"Table configuration file; humans are played by the basic bot"`
	Debug   bool   `help:"Enable debug logging"`
	JSONLog bool   `name:"json-log" help:"Write logs as JSON"`
	LogFile string `env:"BLACKJACK_LOG_FILE" help:"Log file, empty for stderr"`
}

func (c *SimulateCmd) Run() error {
	logger, closeLog, err := setupLogger(c.Debug, c.JSONLog, c.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var table *config.Config
	if c.Config != "" {
		table, err = config.LoadConfig(c.Config)
		if err != nil {
			return err
		}
	}

	seed := randutil.Seed(c.Seed)
	logger.Info("Starting simulation", "games", c.Games, "seed", seed)

	sim := simulator.New(simulator.Config{
		Games:   c.Games,
		Workers: c.Workers,
		Seed:    seed,
		Table:   table,
		Logger:  logger,
	})

	ctx := setupSignalHandler(logger)
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(r *simulator.Report) {
	fmt.Printf("=== %d GAMES COMPLETED (seed: %d) ===\n", r.Games, r.Seed)
	fmt.Printf("Rounds: %d (%d void), stalled games: %d\n", r.Rounds, r.Voided, r.Stalled)
	if r.Elapsed > 0 {
		fmt.Printf("Performance: %.1f rounds/sec\n", float64(r.Rounds)/r.Elapsed.Seconds())
	}
	fmt.Println()

	fmt.Printf("%-12s %-7s %8s %8s %10s %18s %8s %9s\n",
		"Seat", "Agent", "Rounds", "Win %", "Net/round", "95% CI", "Return", "Bankrupt")
	fmt.Println(strings.Repeat("-", 88))
	for _, seat := range r.Seats {
		s := seat.Stats
		low, high := s.ConfidenceInterval95()
		fmt.Printf("%-12s %-7s %8d %7.1f%% %10.3f %18s %7.1f%% %9d\n",
			seat.Name, seat.Agent, s.Rounds, s.WinRate()*100, s.Mean(),
			fmt.Sprintf("[%.3f, %.3f]", low, high), s.Return()*100, seat.Bankrupt)
	}
}
