package blackjack

import (
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

// GameOption configures a Game during creation.
type GameOption func(*gameConfig)

// gameConfig holds all configuration for creating a game.
type gameConfig struct {
	decks     int
	names     []string
	cash      []float64 // If nil, every seat gets startCash
	startCash float64
	stakes    Stakes
	deck      *deck.Deck // If provided, used instead of building a shoe
	clock     quartz.Clock
	id        string
}

// WithDecks sets how many standard decks go into the shoe. Default is 1.
func WithDecks(n int) GameOption {
	return func(c *gameConfig) {
		c.decks = n
	}
}

// WithNames sets seat names, dealer first. Missing names fall back to
// "Dealer" and "Player N".
func WithNames(names []string) GameOption {
	return func(c *gameConfig) {
		c.names = names
	}
}

// WithUniformCash gives every player the same starting cash.
// Default is 100 if not specified.
func WithUniformCash(cash float64) GameOption {
	return func(c *gameConfig) {
		c.startCash = cash
		c.cash = nil
	}
}

// WithCash sets starting cash per seat, dealer first.
// The length must match the number of seats.
func WithCash(cash []float64) GameOption {
	return func(c *gameConfig) {
		c.cash = cash
	}
}

// WithStakes sets the enumerated bet amounts players may choose from.
func WithStakes(stakes Stakes) GameOption {
	return func(c *gameConfig) {
		c.stakes = stakes
	}
}

// WithDeck uses a prepared deck instead of building a fresh shoe.
// Reshuffles still build a fresh shoe from the configured deck count.
func WithDeck(d *deck.Deck) GameOption {
	return func(c *gameConfig) {
		c.deck = d
	}
}

// WithClock sets the clock used to timestamp round history.
func WithClock(clock quartz.Clock) GameOption {
	return func(c *gameConfig) {
		c.clock = clock
	}
}

// WithID sets the game ID instead of generating one.
func WithID(id string) GameOption {
	return func(c *gameConfig) {
		c.id = id
	}
}
