package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
)

// StandardSize is the number of cards in one physical deck.
const StandardSize = 52

var (
	// ErrEmptyDeck is returned when a draw asks for more cards than remain.
	ErrEmptyDeck = errors.New("not enough cards left in deck")
	// ErrInvalidDeckCount is returned when a shoe is built from fewer than one deck.
	ErrInvalidDeckCount = errors.New("deck count must be at least 1")
)

// Deck is a shoe of one or more standard decks. Drawn cards are removed and
// never come back; a new Deck is needed to start over.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New builds a shoe of n standard decks in suit-major, rank-minor order.
// The rng drives every subsequent draw.
func New(n int, rng *rand.Rand) (*Deck, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDeckCount, n)
	}
	if rng == nil {
		return nil, errors.New("rng is required")
	}

	d := &Deck{
		cards: make([]Card, 0, StandardSize*n),
		rng:   rng,
	}
	for range n {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				d.cards = append(d.cards, NewCard(rank, suit))
			}
		}
	}
	return d, nil
}

// NewFromCards creates a deck holding exactly the given cards, in order.
// With a nil rng, draws take cards from the top in order, which makes it
// useful for stacking a deck in tests.
func NewFromCards(cards []Card, rng *rand.Rand) *Deck {
	return &Deck{cards: slices.Clone(cards), rng: rng}
}

// Draw removes count uniformly selected cards from the deck and returns them.
// The deck is left untouched when fewer than count cards remain.
func (d *Deck) Draw(count int) ([]Card, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid draw count %d", count)
	}
	if count > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrEmptyDeck, count, len(d.cards))
	}

	drawn := make([]Card, 0, count)
	for range count {
		i := 0
		if d.rng != nil {
			i = d.rng.IntN(len(d.cards))
		}
		drawn = append(drawn, d.cards[i])
		d.cards = slices.Delete(d.cards, i, i+1)
	}
	return drawn, nil
}

// DrawOne draws a single card.
func (d *Deck) DrawOne() (Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Count returns how many copies of c are still in the deck.
func (d *Deck) Count(c Card) int {
	n := 0
	for _, card := range d.cards {
		if card == c {
			n++
		}
	}
	return n
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
