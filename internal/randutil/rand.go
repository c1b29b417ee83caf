// Package randutil derives reproducible random sources from a single seed.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. PCG needs two
// 64-bit words, so both are expanded from seed with splitmix64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed unchanged when non-zero, otherwise a fresh random seed.
// Callers log the returned value so an unseeded game can be replayed.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return int64(rand.Uint64() >> 1)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}

// Derive returns the n-th child seed of seed, for handing independent
// streams to parallel workers.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed)+uint64(n)*goldenRatio64) >> 1)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
