package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectBet(t *testing.T) {
	tests := []struct {
		name      string
		cash      float64
		amount    float64
		wantErr   error
		wantCash  float64
		wantAlive bool
	}{
		{name: "allowed stake", cash: 20, amount: 10, wantCash: 10, wantAlive: true},
		{name: "whole stack", cash: 20, amount: 20, wantCash: 0, wantAlive: true},
		{name: "not a stake", cash: 20, amount: 7, wantErr: ErrInvalidBet, wantCash: 20, wantAlive: true},
		{name: "more than cash", cash: 15, amount: 20, wantErr: ErrInvalidBet, wantCash: 15, wantAlive: true},
		{name: "negative", cash: 15, amount: -5, wantErr: ErrInvalidBet, wantCash: 15, wantAlive: true},
		{name: "fold", cash: 15, amount: 0, wantCash: 15, wantAlive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := stackedGame(t, 2, "", WithCash([]float64{0, tt.cash}))

			err := g.CollectBet(1, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, g.Seats[1].Bet)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.amount, g.Seats[1].Bet)
			}
			assert.Equal(t, tt.wantCash, g.Seats[1].Cash)
			assert.Equal(t, tt.wantAlive, g.Seats[1].Alive)
		})
	}
}

func TestCollectBetFoldMarksSeat(t *testing.T) {
	g := stackedGame(t, 2, "", WithCash([]float64{0, 12}))
	require.NoError(t, g.CollectBet(1, 0))
	assert.True(t, g.Seats[1].Folded())
	assert.Equal(t, 12.0, g.Seats[1].Cash)
}

func TestCollectBetRejectsDealerAndUnknownSeats(t *testing.T) {
	g := stackedGame(t, 2, "")
	assert.ErrorIs(t, g.CollectBet(0, 5), ErrDealerCannotBet)
	assert.ErrorIs(t, g.CollectBet(2, 5), ErrUnknownSeat)
	assert.ErrorIs(t, g.CollectBet(-1, 5), ErrUnknownSeat)
}

func TestCustomStakes(t *testing.T) {
	g := stackedGame(t, 2, "", WithStakes(Stakes{0, 2.5, 50}), WithCash([]float64{0, 100}))
	assert.ErrorIs(t, g.CollectBet(1, 5), ErrInvalidBet)
	require.NoError(t, g.CollectBet(1, 2.5))
	assert.Equal(t, 97.5, g.Seats[1].Cash)
}

func TestStakes(t *testing.T) {
	s := Stakes{20, 0, 10, 5}

	assert.True(t, s.Allows(10))
	assert.False(t, s.Allows(7))
	assert.Equal(t, Stakes{0, 5, 10}, s.Affordable(12))
	assert.Equal(t, Stakes{0}, s.Affordable(0))

	lowest, ok := s.MinPositive()
	assert.True(t, ok)
	assert.Equal(t, 5.0, lowest)

	_, ok = Stakes{0}.MinPositive()
	assert.False(t, ok)

	assert.NoError(t, DefaultStakes.Validate())
	assert.Error(t, Stakes{}.Validate())
	assert.Error(t, Stakes{0, -5}.Validate())
	assert.Error(t, Stakes{5, 5}.Validate())
}
