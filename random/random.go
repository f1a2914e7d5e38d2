// Package random provides the process-wide source of randomness used for sampling Rows
package random

import (
	"math/rand"
	"sync"
	"time"
)

var (
	defaultSource *LockedSource
	once          sync.Once
)

// LockedSource is a RandomSource which is safe for concurrent use
type LockedSource struct {
	lock sync.Mutex
	rng  *rand.Rand
}

// NewLockedSource returns a LockedSource seeded with seed. Equal seeds produce equal sequences.
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{rng: rand.New(rand.NewSource(seed))}
}

// Default returns the process-wide LockedSource. It is seeded exactly once, on first use.
func Default() *LockedSource {
	once.Do(func() {
		defaultSource = NewLockedSource(time.Now().UnixNano())
	})
	return defaultSource
}

// Intn returns a value in [0, n)
func (s *LockedSource) Intn(n int) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rng.Intn(n)
}
