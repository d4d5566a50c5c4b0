package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the source of every random draw the game makes.
type Rand interface {
	IntN(n int) int
}

// LockedRand is a Rand safe for use by concurrent requests.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *LockedRand {
	return &LockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewEntropyRand returns a source seeded from crypto/rand, meant to live for the whole process.
func NewEntropyRand() *LockedRand {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// fallback to the clock if crypto fails
		now := uint64(time.Now().UnixNano())
		return &LockedRand{rng: rand.New(rand.NewPCG(now, now>>1))}
	}
	return &LockedRand{rng: rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
	))}
}

// IntN returns a uniform int in [0, n).
func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
