// Package gameid generates sortable game identifiers: a UUIDv7 encoded as 26
// characters of Crockford base32.
package gameid

import (
	crand "crypto/rand"
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in a game ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator produces game IDs from a configurable source of randomness.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = crand.Reader
	}
	return &Generator{rand: r}
}

// Generate creates a new game ID from crypto/rand.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new game ID. IDs generated later sort after earlier ones.
func (g *Generator) Generate() string {
	id, err := uuid.NewV7FromReader(g.rand)
	if err != nil {
		// The reader failed; fall back to the default source rather than
		// handing out an empty ID.
		id = uuid.Must(uuid.NewV7())
	}
	return encoding.EncodeToString(id[:])
}

// Validate checks that id is a well-formed game ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	// The last character carries two unused bits, which must be zero.
	if encoding.EncodeToString(raw) != id {
		return fmt.Errorf("invalid game ID %q: non-canonical encoding", id)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	if u.Version() != 7 {
		return fmt.Errorf("game ID %q is not a version 7 UUID", id)
	}
	return nil
}
