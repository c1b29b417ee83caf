package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseCard parses a single card. Both the display form ("A♦", "10♣") and
// the ASCII form ("Ad", "Tc", "10c") are accepted, case-insensitively.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	suitRune, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || len(s) == size {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	suit, err := parseSuit(suitRune)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	rank, err := parseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a whitespace separated list of cards, e.g. "A♦ J♣".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", s)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case '♠', 's', 'S':
		return Spades, nil
	case '♦', 'd', 'D':
		return Diamonds, nil
	case '♣', 'c', 'C':
		return Clubs, nil
	case '♥', 'h', 'H':
		return Hearts, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", r)
	}
}
