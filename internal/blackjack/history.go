package blackjack

import (
	"slices"
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// SeatResult is one seat's part in a finished round.
type SeatResult struct {
	Index     int
	Name      string
	Hand      []deck.Card
	Total     int
	Bet       float64
	Folded    bool
	Busted    bool
	Delta     float64 // Net cash change for the round
	CashAfter float64
}

// RoundRecord is the in-memory record of one round. History is kept for the
// lifetime of the Game only.
type RoundRecord struct {
	Number     int
	StartedAt  time.Time
	FinishedAt time.Time
	Voided     bool
	Seats      []SeatResult
	Winners    []int
	Retired    []int
}

// Duration returns how long the round took
func (r RoundRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Won returns true if seat is among the round's winners.
func (r RoundRecord) Won(seat int) bool {
	return slices.Contains(r.Winners, seat)
}

// History returns a copy of every recorded round, oldest first.
func (g *Game) History() []RoundRecord {
	return slices.Clone(g.history)
}

// beginRound advances the round counter and starts a record for it.
func (g *Game) beginRound() *RoundRecord {
	g.Round++
	return &RoundRecord{
		Number:    g.Round,
		StartedAt: g.clock.Now(),
	}
}

// finishRound captures the seats as they stand before the reset.
func (g *Game) finishRound(rec *RoundRecord, deltas []float64) {
	rec.FinishedAt = g.clock.Now()
	rec.Seats = make([]SeatResult, len(g.Seats))
	for i, s := range g.Seats {
		r := SeatResult{
			Index:     s.Index,
			Name:      s.Name,
			Hand:      slices.Clone(s.Hand),
			Total:     s.Total,
			Bet:       s.Bet,
			Folded:    s.folded,
			Busted:    s.State == Busted,
			CashAfter: s.Cash,
		}
		if deltas != nil {
			r.Delta = deltas[i]
		}
		rec.Seats[i] = r
	}
	g.history = append(g.history, *rec)
}
