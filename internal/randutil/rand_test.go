package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(17), Seed(17))
	assert.GreaterOrEqual(t, Seed(0), int64(0))
}

func TestDeriveGivesDistinctNonNegativeSeeds(t *testing.T) {
	seen := make(map[int64]bool)
	for i := range 100 {
		s := Derive(5, i)
		assert.GreaterOrEqual(t, s, int64(0))
		assert.False(t, seen[s], "duplicate derived seed at %d", i)
		seen[s] = true
	}
	assert.Equal(t, Derive(5, 3), Derive(5, 3))
}
