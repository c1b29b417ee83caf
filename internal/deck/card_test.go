package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "display form",
			input: "A♦ J♣",
			expected: []Card{
				{Rank: Ace, Suit: Diamonds},
				{Rank: Jack, Suit: Clubs},
			},
		},
		{
			name:  "tens",
			input: "10♦ 10h Tc",
			expected: []Card{
				{Rank: Ten, Suit: Diamonds},
				{Rank: Ten, Suit: Hearts},
				{Rank: Ten, Suit: Clubs},
			},
		},
		{
			name:  "case insensitive",
			input: "as KH qD",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
				{Rank: Queen, Suit: Diamonds},
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
		{
			name:    "invalid rank",
			input:   "X♠",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "missing rank",
			input:   "♠",
			wantErr: true,
		},
		{
			name:    "one is not a rank",
			input:   "1♠",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Equal(t, []Card{{Rank: Ace, Suit: Spades}}, MustParseCards("A♠"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♦", NewCard(Ace, Diamonds).String())
	assert.Equal(t, "10♣", NewCard(Ten, Clubs).String())
	assert.Equal(t, "K♥", NewCard(King, Hearts).String())
	assert.Equal(t, "7♠", NewCard(Seven, Spades).String())
}

func TestRankPoints(t *testing.T) {
	expected := map[Rank]int{
		Ace: 1, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
		Eight: 8, Nine: 9, Ten: 10, Jack: 10, Queen: 10, King: 10,
	}
	for rank, points := range expected {
		assert.Equal(t, points, rank.Points(), "rank %s", rank)
	}
}

func TestCardColor(t *testing.T) {
	assert.True(t, NewCard(Ace, Hearts).IsRed())
	assert.True(t, NewCard(Ace, Diamonds).IsRed())
	assert.False(t, NewCard(Ace, Spades).IsRed())
	assert.False(t, NewCard(Ace, Clubs).IsRed())
}
