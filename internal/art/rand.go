package art

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by generators. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic source for seed. A zero seed is replaced by
// the current time.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// ResolveSeed returns seed, or a time-based seed when it is zero.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Between returns an integer in [lo, hi] inclusive. Arguments may be given in
// either order.
func Between(r Rand, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
