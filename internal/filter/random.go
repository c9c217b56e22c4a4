package filter

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for texture overlays.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
	// NormFloat64 returns a standard normal sample.
	NormFloat64() float64
}

// NewRand returns a generator seeded from the clock. Each call returns an
// independent generator, so concurrent filter calls share no state.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// randRange returns a uniform integer in [lo, hi). hi must exceed lo.
func randRange(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}
