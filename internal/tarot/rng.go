package tarot

import (
	"crypto/sha256"
	"encoding/binary"
)

// Rng is a deterministic pseudo-random float stream expanded from a seed by
// repeated SHA-256 hashing. Identical seeds reproduce an identical sequence
// byte-for-byte across processes. One instance must not be shared between
// goroutines.
type Rng struct {
	block  [sha256.Size]byte
	cursor int
}

func NewRng(seed []byte) *Rng {
	return &Rng{block: sha256.Sum256(seed)}
}

// Float returns the next value in [0, 1). Each call consumes 4 bytes of the
// current digest block; an exhausted block is re-digested in place.
func (r *Rng) Float() float64 {
	if r.cursor+4 > len(r.block) {
		r.block = sha256.Sum256(r.block[:])
		r.cursor = 0
	}
	value := binary.BigEndian.Uint32(r.block[r.cursor:])
	r.cursor += 4
	return float64(value) / (1 << 32)
}

// Shuffle returns a Fisher-Yates permutation of the deck driven by the stream.
func (r *Rng) Shuffle(cards []Card) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(r.Float() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
