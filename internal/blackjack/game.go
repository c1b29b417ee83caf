package blackjack

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
)

// MinSeats is the smallest table: a dealer and one player.
const MinSeats = 2

// DefaultCash is the starting cash when no option overrides it.
const DefaultCash = 100.0

// ErrUnknownSeat is returned for seat indices outside the table.
var ErrUnknownSeat = errors.New("unknown seat")

// Game is the single owner of the shoe and every seat's state.
type Game struct {
	ID     string
	Deck   *deck.Deck
	Seats  []*Seat
	Stakes Stakes
	Round  int // Number of the round in progress, or the last one played

	decks   int
	rng     *rand.Rand
	clock   quartz.Clock
	history []RoundRecord
}

// NewGame creates a game with the given number of seats, dealer included.
// The RNG is required to make randomness explicit and testing deterministic.
//
// Example usage:
//
//	g, err := NewGame(randutil.New(42), 3,
//	    WithDecks(2),
//	    WithCash([]float64{0, 10.3, 4.8}))
func NewGame(rng *rand.Rand, seats int, opts ...GameOption) (*Game, error) {
	if rng == nil {
		return nil, errors.New("rng is required for game creation")
	}
	if seats < MinSeats {
		return nil, fmt.Errorf("at least %d seats required, got %d", MinSeats, seats)
	}

	cfg := &gameConfig{
		decks:     1,
		startCash: DefaultCash,
		stakes:    DefaultStakes,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.cash != nil && len(cfg.cash) != seats {
		return nil, fmt.Errorf("cash must have one entry per seat: got %d, want %d", len(cfg.cash), seats)
	}
	if len(cfg.names) > seats {
		return nil, fmt.Errorf("got %d names for %d seats", len(cfg.names), seats)
	}
	if err := cfg.stakes.Validate(); err != nil {
		return nil, err
	}

	shoe := cfg.deck
	if shoe == nil {
		var err error
		if shoe, err = deck.New(cfg.decks, rng); err != nil {
			return nil, err
		}
	}

	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.id == "" {
		cfg.id = gameid.Generate()
	}

	g := &Game{
		ID:     cfg.id,
		Deck:   shoe,
		Seats:  make([]*Seat, seats),
		Stakes: slices.Clone(cfg.stakes),
		decks:  cfg.decks,
		rng:    rng,
		clock:  cfg.clock,
	}

	for i := range seats {
		cash := cfg.startCash
		if cfg.cash != nil {
			cash = cfg.cash[i]
		}
		if cash < 0 {
			return nil, fmt.Errorf("seat %d: cash must not be negative, got %.2f", i, cash)
		}
		g.Seats[i] = &Seat{
			Index: i,
			Name:  seatName(cfg.names, i),
			Cash:  cash,
			Alive: true,
		}
	}

	return g, nil
}

func seatName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	if i == DealerSeat {
		return "Dealer"
	}
	return fmt.Sprintf("Player %d", i)
}

// Seat returns the seat at index i.
func (g *Game) Seat(i int) (*Seat, error) {
	if i < 0 || i >= len(g.Seats) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeat, i)
	}
	return g.Seats[i], nil
}

// Dealer returns the dealer's seat
func (g *Game) Dealer() *Seat {
	return g.Seats[DealerSeat]
}

// Players returns every non-dealer seat, retired ones included.
func (g *Game) Players() []*Seat {
	return g.Seats[DealerSeat+1:]
}

// AppendCard adds c to the seat's hand and recomputes its total.
func (g *Game) AppendCard(seat int, c deck.Card) error {
	s, err := g.Seat(seat)
	if err != nil {
		return err
	}
	s.Hand = append(s.Hand, c)
	s.Total = Evaluate(s.Hand)
	return nil
}

// CheckBust marks the seat out of the round when its total exceeds 21 and
// returns whether the seat is still alive.
func (g *Game) CheckBust(seat int) bool {
	s, err := g.Seat(seat)
	if err != nil {
		return false
	}
	if s.Total > Blackjack {
		s.Alive = false
	}
	return s.Alive
}

// ResetRound clears hands, totals, bets and turn state for every seat.
// Cash is untouched and retired seats stay out.
func (g *Game) ResetRound() {
	for _, s := range g.Seats {
		s.resetRound()
	}
}

// RetireBankrupt permanently removes players with no cash left and returns
// the seats retired by this call.
func (g *Game) RetireBankrupt() []int {
	var retired []int
	for _, s := range g.Players() {
		if s.Retired || s.Cash > 0 {
			continue
		}
		s.Retired = true
		s.Alive = false
		retired = append(retired, s.Index)
	}
	return retired
}

// PlayersRemaining counts players that have not been retired.
func (g *Game) PlayersRemaining() int {
	n := 0
	for _, s := range g.Players() {
		if !s.Retired {
			n++
		}
	}
	return n
}

// CanContinue reports whether another round can do anything useful: some
// player is still seated and can afford a stake other than a fold.
func (g *Game) CanContinue() bool {
	minStake, ok := g.Stakes.MinPositive()
	if !ok {
		return false
	}
	for _, s := range g.Players() {
		if !s.Retired && s.Cash >= minStake {
			return true
		}
	}
	return false
}

// Reshuffle replaces the deck with a fresh shoe of the configured size.
func (g *Game) Reshuffle() error {
	shoe, err := deck.New(g.decks, g.rng)
	if err != nil {
		return err
	}
	g.Deck = shoe
	return nil
}

// Decks returns the number of standard decks per shoe.
func (g *Game) Decks() int {
	return g.decks
}
