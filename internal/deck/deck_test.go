package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

func TestNewBuildsEveryCardNTimes(t *testing.T) {
	for _, n := range []int{1, 2, 6} {
		d, err := New(n, randutil.New(1))
		require.NoError(t, err)
		assert.Equal(t, StandardSize*n, d.Remaining())

		for _, suit := range Suits {
			for _, rank := range Ranks {
				assert.Equal(t, n, d.Count(NewCard(rank, suit)), "%s%s with %d decks", rank, suit, n)
			}
		}
	}
}

func TestNewEnumerationOrder(t *testing.T) {
	d, err := New(1, randutil.New(1))
	require.NoError(t, err)

	cards := d.Cards()
	assert.Equal(t, NewCard(Ace, Spades), cards[0])
	assert.Equal(t, NewCard(King, Spades), cards[12])
	assert.Equal(t, NewCard(Ace, Diamonds), cards[13])
	assert.Equal(t, NewCard(King, Hearts), cards[51])
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(0, randutil.New(1))
	assert.ErrorIs(t, err, ErrInvalidDeckCount)

	_, err = New(-3, randutil.New(1))
	assert.ErrorIs(t, err, ErrInvalidDeckCount)

	_, err = New(1, nil)
	assert.Error(t, err)
}

func TestDrawRemovesCards(t *testing.T) {
	d, err := New(1, randutil.New(7))
	require.NoError(t, err)

	drawn, err := d.Draw(5)
	require.NoError(t, err)
	assert.Len(t, drawn, 5)
	assert.Equal(t, StandardSize-5, d.Remaining())

	// single deck: a drawn card can no longer be in the deck
	for _, c := range drawn {
		assert.Zero(t, d.Count(c), "drawn card %s still in deck", c)
	}
}

func TestDrawNeverDuplicatesAcrossWholeShoe(t *testing.T) {
	d, err := New(2, randutil.New(99))
	require.NoError(t, err)

	seen := make(map[Card]int)
	for !d.IsEmpty() {
		c, err := d.DrawOne()
		require.NoError(t, err)
		seen[c]++
	}

	assert.Len(t, seen, StandardSize)
	for c, n := range seen {
		assert.Equal(t, 2, n, "card %s", c)
	}
}

func TestDrawEmptyDeck(t *testing.T) {
	d := NewFromCards(MustParseCards("A♠ K♦"), nil)

	_, err := d.Draw(3)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 2, d.Remaining(), "failed draw must not consume cards")

	cards, err := d.Draw(0)
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = d.Draw(-1)
	assert.Error(t, err)
}

func TestStackedDeckDrawsFromTop(t *testing.T) {
	d := NewFromCards(MustParseCards("A♠ K♦ 5♣"), nil)

	cards, err := d.Draw(2)
	require.NoError(t, err)
	assert.Equal(t, MustParseCards("A♠ K♦"), cards)

	c, err := d.DrawOne()
	require.NoError(t, err)
	assert.Equal(t, NewCard(Five, Clubs), c)

	_, err = d.DrawOne()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDrawIsReproducibleForSeed(t *testing.T) {
	a, err := New(1, randutil.New(2))
	require.NoError(t, err)
	b, err := New(1, randutil.New(2))
	require.NoError(t, err)

	ca, err := a.Draw(10)
	require.NoError(t, err)
	cb, err := b.Draw(10)
	require.NoError(t, err)
	assert.Equal(t, ca, cb)
}
