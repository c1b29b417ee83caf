package agent

import (
	"bytes"
	"context"
	"errors"
	"io"
	rand "math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

var quietLogger = log.New(io.Discard)

func betRequest(cash float64) blackjack.BetRequest {
	return blackjack.BetRequest{
		Seat:   1,
		Name:   "Player 1",
		Cash:   cash,
		Stakes: blackjack.DefaultStakes,
	}
}

func decision(total int, soft bool, up deck.Rank) blackjack.DecisionRequest {
	return blackjack.DecisionRequest{
		Seat:         1,
		Name:         "Player 1",
		Total:        total,
		Soft:         soft,
		DealerUpCard: deck.NewCard(up, deck.Spades),
	}
}

func TestHumanBet(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(strings.NewReader("lots\n 10 \n"), &out)

	amount, err := h.Bet(context.Background(), betRequest(20))
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)
	assert.Contains(t, out.String(), "Unrecognized bet!")
	assert.Contains(t, out.String(), "Player 1 (cash 20.00) bet [0 5 10 20]")
}

func TestHumanBetShowsRejection(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(strings.NewReader("5\n"), &out)

	req := betRequest(7)
	req.Rejected = errors.New("bet 10 is more than cash 7")
	amount, err := h.Bet(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5.0, amount)
	assert.Contains(t, out.String(), "Bet rejected: bet 10 is more than cash 7")
	assert.Contains(t, out.String(), "bet [0 5]")
}

func TestHumanQuit(t *testing.T) {
	h := NewHuman(strings.NewReader("q\nQuit\n"), io.Discard)

	_, err := h.Bet(context.Background(), betRequest(20))
	assert.ErrorIs(t, err, blackjack.ErrQuit)

	action, err := h.Decide(context.Background(), decision(12, false, deck.Ten))
	require.NoError(t, err)
	assert.Equal(t, blackjack.Quit, action)
}

func TestHumanDecide(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(strings.NewReader("x\nH\nstop\n"), &out)

	action, err := h.Decide(context.Background(), decision(12, false, deck.Ten))
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, action)
	assert.Equal(t, 1, strings.Count(out.String(), "Unrecognized action!"))

	action, err = h.Decide(context.Background(), decision(15, false, deck.Ten))
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, action)
	assert.Contains(t, out.String(), "Player 1 (15): H (Hit), S (Stop)")
}

func TestHumanClosedInputQuits(t *testing.T) {
	h := NewHuman(strings.NewReader(""), io.Discard)
	_, err := h.Decide(context.Background(), decision(12, false, deck.Ten))
	assert.ErrorIs(t, err, blackjack.ErrQuit)
}

func TestHumanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHuman(strings.NewReader("h\n"), io.Discard)
	_, err := h.Decide(ctx, decision(12, false, deck.Ten))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHumanClose(t *testing.T) {
	h := NewHuman(strings.NewReader("h\ns\ns\n"), io.Discard)
	action, err := h.Decide(context.Background(), decision(12, false, deck.Ten))
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, action)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close(), "close twice")

	_, err = h.Decide(context.Background(), decision(12, false, deck.Ten))
	assert.ErrorIs(t, err, blackjack.ErrQuit)
	_, err = h.Bet(context.Background(), blackjack.BetRequest{Name: "Player 1", Cash: 20, Stakes: blackjack.DefaultStakes})
	assert.ErrorIs(t, err, blackjack.ErrQuit)
}

func TestRule(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		req  blackjack.DecisionRequest
		want blackjack.Action
	}{
		{"below 17", Rule{}, decision(16, false, deck.Ten), blackjack.Hit},
		{"hard 17", Rule{}, decision(17, false, deck.Ten), blackjack.Stand},
		{"soft 17 stands", Rule{}, decision(17, true, deck.Ten), blackjack.Stand},
		{"soft 17 hits", Rule{HitSoft17: true}, decision(17, true, deck.Ten), blackjack.Hit},
		{"hard 17 with soft rule", Rule{HitSoft17: true}, decision(17, false, deck.Ten), blackjack.Stand},
		{"custom threshold", Rule{StandOn: 15}, decision(15, false, deck.Ten), blackjack.Stand},
		{"custom threshold hit", Rule{StandOn: 15}, decision(14, false, deck.Ten), blackjack.Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.Decide(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasicBet(t *testing.T) {
	b := NewBasic(10, quietLogger)

	amount, err := b.Bet(context.Background(), betRequest(100))
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)

	amount, err = b.Bet(context.Background(), betRequest(7))
	require.NoError(t, err)
	assert.Equal(t, 5.0, amount, "drops to what it can afford")

	amount, err = b.Bet(context.Background(), betRequest(3))
	require.NoError(t, err)
	assert.Zero(t, amount)

	amount, err = NewBasic(0, quietLogger).Bet(context.Background(), betRequest(100))
	require.NoError(t, err)
	assert.Equal(t, 5.0, amount, "no target bets the table minimum")
}

func TestBasicDecide(t *testing.T) {
	b := NewBasic(10, quietLogger)

	tests := []struct {
		name string
		req  blackjack.DecisionRequest
		want blackjack.Action
	}{
		{"eleven", decision(11, false, deck.Six), blackjack.Hit},
		{"hard 13 vs 6", decision(13, false, deck.Six), blackjack.Stand},
		{"hard 13 vs ace", decision(13, false, deck.Ace), blackjack.Hit},
		{"hard 16 vs king", decision(16, false, deck.King), blackjack.Hit},
		{"hard 17 vs king", decision(17, false, deck.King), blackjack.Stand},
		{"soft 17", decision(17, true, deck.Two), blackjack.Hit},
		{"soft 18", decision(18, true, deck.Ten), blackjack.Stand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Decide(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandom(t *testing.T) {
	r := NewRandom(rand.New(rand.NewPCG(1, 2)), quietLogger)

	for range 50 {
		amount, err := r.Bet(context.Background(), betRequest(12))
		require.NoError(t, err)
		assert.True(t, blackjack.DefaultStakes.Affordable(12).Allows(amount))

		action, err := r.Decide(context.Background(), decision(21, false, deck.Ten))
		require.NoError(t, err)
		assert.Equal(t, blackjack.Stand, action, "never hits 21")

		action, err = r.Decide(context.Background(), decision(10, false, deck.Ten))
		require.NoError(t, err)
		assert.Equal(t, blackjack.Hit, action, "always hits 11 or less")
	}
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	human := NewHuman(strings.NewReader(""), io.Discard)

	for _, kind := range []string{KindHuman, KindBasic, KindRandom} {
		a, err := New(kind, 5, rng, human, quietLogger)
		require.NoError(t, err, kind)
		assert.NotNil(t, a)
	}

	a, err := New(KindHuman, 5, rng, human, quietLogger)
	require.NoError(t, err)
	assert.Same(t, human, a, "human seats share the terminal")

	_, err = New(KindHuman, 5, rng, nil, quietLogger)
	assert.Error(t, err)

	_, err = New("shark", 5, rng, human, quietLogger)
	assert.Error(t, err)
}

func TestNewDealer(t *testing.T) {
	human := NewHuman(strings.NewReader(""), io.Discard)

	d, err := NewDealer(DealerRule, 16, true, nil)
	require.NoError(t, err)
	assert.Equal(t, Rule{StandOn: 16, HitSoft17: true}, d)

	d, err = NewDealer(DealerManual, 0, false, human)
	require.NoError(t, err)
	assert.Same(t, human, d)

	_, err = NewDealer(DealerManual, 0, false, nil)
	assert.Error(t, err)

	_, err = NewDealer("casino", 0, false, human)
	assert.Error(t, err)
}
