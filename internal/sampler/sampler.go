// Package sampler is the single source of randomness for scenario
// generation. Swapping in a seeded or scripted Sampler makes every
// generator deterministic.
package sampler

import (
	"math/rand/v2"
)

// Sampler draws uniformly distributed integers from an inclusive range.
type Sampler interface {
	// Int returns a value in [lo, hi]. When lo == hi it returns lo.
	Int(lo, hi int) int
}

// Rand is a Sampler backed by math/rand/v2.
type Rand struct {
	r *rand.Rand
}

var _ Sampler = (*Rand)(nil)

// New returns a Sampler seeded from the runtime's random source.
func New() *Rand {
	return &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a reproducible Sampler.
func NewSeeded(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Rand) Int(lo, hi int) int {
	lo, hi = order(lo, hi)
	if lo == hi {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen index into a collection of length n.
// n must be positive.
func Pick(s Sampler, n int) int {
	return s.Int(0, n-1)
}

// Coin returns true with probability one half.
func Coin(s Sampler) bool {
	return s.Int(0, 1) == 1
}

func order(lo, hi int) (int, int) {
	if lo > hi {
		return hi, lo
	}
	return lo, hi
}
