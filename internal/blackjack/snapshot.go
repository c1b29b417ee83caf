package blackjack

import (
	"fmt"
	"slices"

	"github.com/lox/blackjack/internal/deck"
)

// Event names the state change a Snapshot was taken after.
type Event int

const (
	EventRoundStart Event = iota
	EventBet
	EventDeal
	EventHit
	EventStand
	EventBust
	EventOutcome
	EventVoid
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventRoundStart:
		return "round_start"
	case EventBet:
		return "bet"
	case EventDeal:
		return "deal"
	case EventHit:
		return "hit"
	case EventStand:
		return "stand"
	case EventBust:
		return "bust"
	case EventOutcome:
		return "outcome"
	case EventVoid:
		return "void"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// SeatSnapshot is a read-only copy of one seat.
type SeatSnapshot struct {
	Index   int
	Name    string
	Hand    []deck.Card
	Total   int
	Soft    bool
	Alive   bool
	Retired bool
	Folded  bool
	Cash    float64
	Bet     float64
	State   SeatState
}

// IsDealer returns true for the dealer seat
func (s SeatSnapshot) IsDealer() bool {
	return s.Index == DealerSeat
}

// Snapshot is a copy of the whole table, safe to keep after the game moves on.
type Snapshot struct {
	GameID        string
	Round         int
	Event         Event
	Acting        int // Seat whose decision is awaited, -1 outside the turn stage
	DeckRemaining int
	Seats         []SeatSnapshot
	Winners       []int // Only set for EventOutcome
}

// Dealer returns the dealer's seat snapshot
func (s Snapshot) Dealer() SeatSnapshot {
	return s.Seats[DealerSeat]
}

// Observer receives a Snapshot after every state-changing event.
type Observer interface {
	Observe(Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Snapshot)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Snapshot) {
	f(s)
}

// Snapshot copies the current table state.
func (g *Game) Snapshot(event Event, acting int) Snapshot {
	seats := make([]SeatSnapshot, len(g.Seats))
	for i, s := range g.Seats {
		seats[i] = SeatSnapshot{
			Index:   s.Index,
			Name:    s.Name,
			Hand:    slices.Clone(s.Hand),
			Total:   s.Total,
			Soft:    s.IsSoft(),
			Alive:   s.Alive,
			Retired: s.Retired,
			Folded:  s.folded,
			Cash:    s.Cash,
			Bet:     s.Bet,
			State:   s.State,
		}
	}
	return Snapshot{
		GameID:        g.ID,
		Round:         g.Round,
		Event:         event,
		Acting:        acting,
		DeckRemaining: g.Deck.Remaining(),
		Seats:         seats,
	}
}
