package blackjack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedAgent replays fixed bets and actions in order.
type scriptedAgent struct {
	bets    []float64
	actions []Action
	betReqs []BetRequest
	decReqs []DecisionRequest
}

func (a *scriptedAgent) Bet(_ context.Context, req BetRequest) (float64, error) {
	a.betReqs = append(a.betReqs, req)
	if len(a.bets) == 0 {
		return 0, errScriptExhausted
	}
	b := a.bets[0]
	a.bets = a.bets[1:]
	return b, nil
}

func (a *scriptedAgent) Decide(_ context.Context, req DecisionRequest) (Action, error) {
	a.decReqs = append(a.decReqs, req)
	if len(a.actions) == 0 {
		return 0, errScriptExhausted
	}
	act := a.actions[0]
	a.actions = a.actions[1:]
	return act, nil
}

// standOn17 is a minimal dealer policy for engine tests.
type standOn17 struct{}

func (standOn17) Bet(context.Context, BetRequest) (float64, error) { return 0, nil }

func (standOn17) Decide(_ context.Context, req DecisionRequest) (Action, error) {
	if req.Total < 17 {
		return Hit, nil
	}
	return Stand, nil
}

// stackedGame builds a game whose deck deals the given cards in order.
// Dealing goes seat 0 first, two cards per seat.
func stackedGame(t *testing.T, seats int, cards string, opts ...GameOption) *Game {
	t.Helper()
	opts = append([]GameOption{
		WithDeck(deck.NewFromCards(deck.MustParseCards(cards), nil)),
		WithID("test-game"),
	}, opts...)
	g, err := NewGame(randutil.New(1), seats, opts...)
	require.NoError(t, err)
	return g
}

// setHand replaces a seat's hand and recomputes its total.
func setHand(t *testing.T, g *Game, seat int, cards string) {
	t.Helper()
	g.Seats[seat].Hand = nil
	for _, c := range deck.MustParseCards(cards) {
		require.NoError(t, g.AppendCard(seat, c))
	}
}
