package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Random is the pseudo-random source a game draws its coin flips and
// opponent picks from. *rand.Rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewRandom returns a session-local source seeded from crypto/rand
func NewRandom() Random {
	return rand.New(rand.NewSource(newSeed()))
}

// NewSeededRandom returns a deterministic source for replays and tests
func NewSeededRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
