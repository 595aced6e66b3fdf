package random

import (
	"math/rand"
	"sync"
)

// Source is a seeded *rand.Rand guarded for use by concurrent requests.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
