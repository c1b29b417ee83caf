package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/config"
)

// CheckConfigCmd validates a table configuration file
type CheckConfigCmd struct {
	Path string `arg:"" type:"existingfile" help:"HCL configuration file"`
}

func (c *CheckConfigCmd) Run() error {
	src, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	cfg, err := config.Parse(src, c.Path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}

	fmt.Printf("%s is valid\n", c.Path)
	fmt.Printf("  decks %d, stakes %v, payout %.2f\n", cfg.Table.Decks, cfg.Table.Stakes, cfg.Table.Payout)
	fmt.Printf("  dealer %s (stands on %d, hits soft 17: %t)\n", cfg.Dealer.Policy, cfg.Dealer.StandOn, cfg.Dealer.HitSoft17)
	for _, p := range cfg.Players {
		fmt.Printf("  %s: %s, cash %.2f\n", p.Name, p.Agent, p.Cash)
	}
	return nil
}
