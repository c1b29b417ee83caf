package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
)

// buildAgents creates one agent per seat, dealer first. Every human seat and a
// manual dealer share the one terminal agent.
func buildAgents(cfg *config.Config, seed int64, human *agent.Human, logger *log.Logger) ([]blackjack.Agent, error) {
	dealer, err := agent.NewDealer(cfg.Dealer.Policy, cfg.Dealer.StandOn, cfg.Dealer.HitSoft17, human)
	if err != nil {
		return nil, err
	}

	agents := []blackjack.Agent{dealer}
	for i, p := range cfg.Players {
		rng := randutil.New(randutil.Derive(seed, i+1))
		a, err := agent.New(p.Agent, p.Stake, rng, human, logger)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		agents = append(agents, a)
	}
	return agents, nil
}
