package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		total int
		soft  bool
	}{
		{"ace and jack", "A♦ J♣", 21, true},
		{"two aces", "A♦ A♣", 12, true},
		{"three aces", "A♦ A♣ A♥", 13, true},
		{"no ace bust", "10♦ 5♣ 8♥", 23, false},
		{"faces", "K♠ Q♥", 20, false},
		{"soft seventeen", "A♠ 6♦", 17, true},
		{"ace forced hard", "A♠ 6♦ 9♣", 16, false},
		{"eleven raw with ace", "A♠ K♦ K♣", 21, false},
		{"empty", "", 0, false},
		{"raw eleven upgrades", "A♠ 5♦ 5♣", 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := deck.MustParseCards(tt.hand)
			assert.Equal(t, tt.total, Evaluate(hand))
			assert.Equal(t, tt.soft, IsSoft(hand))
			assert.Equal(t, tt.total > 21, IsBust(hand))
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	hand := deck.MustParseCards("A♦ 9♣")
	before := append([]deck.Card(nil), hand...)
	Evaluate(hand)
	assert.Equal(t, before, hand)
}
