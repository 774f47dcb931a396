package mission

import (
	"math/rand"
	"time"
)

// Rand is the random source the simulation draws from. *rand.Rand satisfies it;
// tests substitute fixed sources to force hack and detection outcomes.
type Rand interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n).
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only, crypto/rand not needed
}
