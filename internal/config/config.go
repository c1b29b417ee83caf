// Package config loads table configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
)

// MaxPlayers caps the number of player seats at one table.
const MaxPlayers = 7

// Config represents a complete table configuration
type Config struct {
	Table   *TableSettings  `hcl:"table,block"`
	Dealer  *DealerSettings `hcl:"dealer,block"`
	Players []PlayerConfig  `hcl:"player,block"`
}

// TableSettings contains the shoe, stakes and game length
type TableSettings struct {
	Decks        int       `hcl:"decks,optional"`
	Seed         int64     `hcl:"seed,optional"`
	Stakes       []float64 `hcl:"stakes,optional"`
	Payout       float64   `hcl:"payout,optional"`
	MaxRounds    int       `hcl:"max_rounds,optional"`
	StartingCash float64   `hcl:"starting_cash,optional"`
	ClearScreen  bool      `hcl:"clear_screen,optional"`
}

// DealerSettings chooses how the dealer plays
type DealerSettings struct {
	Policy    string `hcl:"policy,optional"`
	StandOn   int    `hcl:"stand_on,optional"`
	HitSoft17 bool   `hcl:"hit_soft_17,optional"`
}

// PlayerConfig defines one player seat
type PlayerConfig struct {
	Name  string  `hcl:"name,label"`
	Agent string  `hcl:"agent,optional"`
	Cash  float64 `hcl:"cash,optional"`
	Stake float64 `hcl:"stake,optional"`
}

// DefaultConfig returns one human player against a rule dealer
func DefaultConfig() *Config {
	c := &Config{
		Players: []PlayerConfig{{Name: "Player 1"}},
	}
	c.applyDefaults()
	return c
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(config.Players) == 0 {
		config.Players = DefaultConfig().Players
	}
	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills zero values. Zero payout and zero cash are read as
// unset.
func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.Decks == 0 {
		c.Table.Decks = 1
	}
	if len(c.Table.Stakes) == 0 {
		c.Table.Stakes = slices.Clone(blackjack.DefaultStakes)
	}
	if c.Table.Payout == 0 {
		c.Table.Payout = blackjack.DefaultPayout
	}
	if c.Table.StartingCash == 0 {
		c.Table.StartingCash = blackjack.DefaultCash
	}

	if c.Dealer == nil {
		c.Dealer = &DealerSettings{}
	}
	if c.Dealer.Policy == "" {
		c.Dealer.Policy = agent.DealerRule
	}
	if c.Dealer.StandOn == 0 {
		c.Dealer.StandOn = agent.DefaultStandOn
	}

	for i := range c.Players {
		if c.Players[i].Agent == "" {
			c.Players[i].Agent = agent.KindHuman
		}
		if c.Players[i].Cash == 0 {
			c.Players[i].Cash = c.Table.StartingCash
		}
	}
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}
	if len(c.Players) > MaxPlayers {
		return fmt.Errorf("at most %d players can sit at a table, got %d", MaxPlayers, len(c.Players))
	}

	if c.Table.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Table.Decks)
	}
	if err := blackjack.Stakes(c.Table.Stakes).Validate(); err != nil {
		return fmt.Errorf("stakes: %w", err)
	}
	if _, ok := blackjack.Stakes(c.Table.Stakes).MinPositive(); !ok {
		return fmt.Errorf("stakes must include an amount above zero")
	}
	if c.Table.Payout < 0 {
		return fmt.Errorf("payout must not be negative, got %.2f", c.Table.Payout)
	}
	if c.Table.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative, got %d", c.Table.MaxRounds)
	}
	if c.Table.StartingCash < 0 {
		return fmt.Errorf("starting_cash must not be negative")
	}

	switch c.Dealer.Policy {
	case agent.DealerRule, agent.DealerManual:
	default:
		return fmt.Errorf("dealer: invalid policy %s", c.Dealer.Policy)
	}
	if c.Dealer.StandOn < 2 || c.Dealer.StandOn > blackjack.Blackjack {
		return fmt.Errorf("dealer: stand_on must be between 2 and %d", blackjack.Blackjack)
	}

	validAgents := map[string]bool{
		agent.KindHuman:  true,
		agent.KindBasic:  true,
		agent.KindRandom: true,
	}

	seen := map[string]bool{"Dealer": true}
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: name is already taken", p.Name)
		}
		seen[p.Name] = true

		if !validAgents[p.Agent] {
			return fmt.Errorf("player %s: invalid agent %s", p.Name, p.Agent)
		}
		if p.Cash < 0 {
			return fmt.Errorf("player %s: cash must not be negative", p.Name)
		}
		if p.Stake < 0 {
			return fmt.Errorf("player %s: stake must not be negative", p.Name)
		}
	}

	return nil
}

// Seats returns the seat count including the dealer
func (c *Config) Seats() int {
	return len(c.Players) + 1
}

// HasHumans returns true if any seat, dealer included, is played at the
// keyboard.
func (c *Config) HasHumans() bool {
	if c.Dealer.Policy == agent.DealerManual {
		return true
	}
	for _, p := range c.Players {
		if p.Agent == agent.KindHuman {
			return true
		}
	}
	return false
}

// GameOptions returns the options that build a Game for this table.
func (c *Config) GameOptions() []blackjack.GameOption {
	names := make([]string, 0, c.Seats())
	cash := make([]float64, 0, c.Seats())
	names = append(names, "Dealer")
	cash = append(cash, 0)
	for _, p := range c.Players {
		names = append(names, p.Name)
		cash = append(cash, p.Cash)
	}

	return []blackjack.GameOption{
		blackjack.WithDecks(c.Table.Decks),
		blackjack.WithNames(names),
		blackjack.WithCash(cash),
		blackjack.WithStakes(c.Table.Stakes),
	}
}

// EngineOptions returns the payout and round limit for an Engine.
func (c *Config) EngineOptions() []blackjack.EngineOption {
	return []blackjack.EngineOption{
		blackjack.WithPayout(c.Table.Payout),
		blackjack.WithMaxRounds(c.Table.MaxRounds),
	}
}
