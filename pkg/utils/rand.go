package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource is a seedable random number generator, safe for concurrent use.
// A zero seed selects a time-based seed; any other value makes the sequence
// reproducible.
type RandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Float64()*(max-min)
}
