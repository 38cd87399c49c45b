package market

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// lockedSource makes a *rand.Rand safe for concurrent callers.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a concurrency-safe PCG source. A zero seed picks a time-based seed.
func NewSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
