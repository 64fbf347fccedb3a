package generator

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source supplies the random draws used by a Generator.
type Source interface {
	// InRange returns a value in [lo, hi). Callers guarantee lo < hi.
	InRange(lo, hi uint64) uint64
	// Index returns a value in [0, n). Callers guarantee n > 0.
	Index(n int) int
}

// RandSource is a general purpose PCG source. It is not suitable for
// secrets that need cryptographic strength.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource seeds from the clock when seed is zero.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandSource) InRange(lo, hi uint64) uint64 {
	return lo + s.rng.Uint64n(hi-lo)
}

func (s *RandSource) Index(n int) int {
	return s.rng.Intn(n)
}
