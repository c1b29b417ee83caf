package blackjack

import (
	"fmt"
	"slices"

	"github.com/lox/blackjack/internal/deck"
)

// DealerSeat is the seat index the dealer always occupies.
const DealerSeat = 0

// SeatState tracks a seat's progress through the turn order in one round.
type SeatState int

const (
	Waiting SeatState = iota
	Acting
	Busted
	Stood
)

func (s SeatState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Acting:
		return "acting"
	case Busted:
		return "busted"
	case Stood:
		return "stood"
	default:
		return fmt.Sprintf("SeatState(%d)", int(s))
	}
}

// IsTerminal returns true once the seat can no longer act this round.
func (s SeatState) IsTerminal() bool {
	return s == Busted || s == Stood
}

// Seat is the mutable per-seat record of a Game.
//
// Alive is false for the rest of a round after a bust or a zero bet. Retired
// is set for the rest of the game once the seat runs out of cash.
type Seat struct {
	Index   int
	Name    string
	Hand    []deck.Card
	Total   int
	Alive   bool
	Retired bool
	Cash    float64
	Bet     float64
	State   SeatState

	folded bool
}

// IsDealer returns true for the dealer seat
func (s *Seat) IsDealer() bool {
	return s.Index == DealerSeat
}

// IsSoft reports whether the seat's total counts an ace as 11.
func (s *Seat) IsSoft() bool {
	return IsSoft(s.Hand)
}

// Folded returns true if the seat sat this round out with a zero bet.
func (s *Seat) Folded() bool {
	return s.folded
}

// UpCard returns the first card dealt to the seat, if any.
func (s *Seat) UpCard() (deck.Card, bool) {
	if len(s.Hand) == 0 {
		return deck.Card{}, false
	}
	return s.Hand[0], true
}

func (s *Seat) clone() Seat {
	c := *s
	c.Hand = slices.Clone(s.Hand)
	return c
}

func (s *Seat) resetRound() {
	s.Hand = nil
	s.Total = 0
	s.Bet = 0
	s.State = Waiting
	s.Alive = !s.Retired
	s.folded = false
}
