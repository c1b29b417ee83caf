package blackjack

import "github.com/lox/blackjack/internal/deck"

// Blackjack is the best possible hand total.
const Blackjack = 21

// softAceBonus is added once when an ace can count 11 without busting.
const softAceBonus = 10

// Evaluate returns the blackjack total of hand. Aces count 1; if the raw
// sum is below 12 and the hand holds an ace, one ace is upgraded to 11.
// Only one upgrade is ever considered, so three aces total 13.
func Evaluate(hand []deck.Card) int {
	total := rawTotal(hand)
	if total < 12 && hasAce(hand) {
		total += softAceBonus
	}
	return total
}

// IsSoft reports whether Evaluate counted an ace as 11.
func IsSoft(hand []deck.Card) bool {
	return rawTotal(hand) < 12 && hasAce(hand)
}

// IsBust reports whether the hand total exceeds 21.
func IsBust(hand []deck.Card) bool {
	return Evaluate(hand) > Blackjack
}

func rawTotal(hand []deck.Card) int {
	total := 0
	for _, c := range hand {
		total += c.Rank.Points()
	}
	return total
}

func hasAce(hand []deck.Card) bool {
	for _, c := range hand {
		if c.IsAce() {
			return true
		}
	}
	return false
}
