// Package sampling draws bounded random values for mock dashboard metrics.
//
// All bounds are inclusive. Every generator in the dashboard package goes
// through a Sampler so that metric tables stay declarative.
package sampling

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Sampler draws uniform integers, one-decimal floats, choices and samples.
// The zero value uses the process-wide generator and is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Sampler.
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sampler) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *Sampler) float64() float64 {
	if s.rng == nil {
		return rand.Float64()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Sampler) perm(n int) []int {
	if s.rng == nil {
		return rand.Perm(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}

// Int returns a uniform integer in [lo, hi]. Swapped bounds are reordered.
func (s *Sampler) Int(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.intN(hi-lo+1)
}

// Float1 returns a uniform float in [lo, hi] rounded to one decimal place.
// lo and hi are expected to carry at most one decimal themselves.
func (s *Sampler) Float1(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	v := math.Round((lo+s.float64()*(hi-lo))*10) / 10
	// Rounding can step one tenth outside bounds that are not on the grid.
	return math.Min(math.Max(v, lo), hi)
}

// IntSeries returns n independent draws of Int(lo, hi).
func (s *Sampler) IntSeries(n, lo, hi int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = s.Int(lo, hi)
	}
	return out
}

// Choice returns one element of set. It panics on an empty set.
func Choice[T any](s *Sampler, set []T) T {
	if len(set) == 0 {
		panic("sampling: Choice from empty set")
	}
	return set[s.intN(len(set))]
}

// Sample returns k distinct elements of set in random order. k is clamped
// to len(set).
func Sample[T any](s *Sampler, set []T, k int) []T {
	if k > len(set) {
		k = len(set)
	}
	if k <= 0 {
		return []T{}
	}
	out := make([]T, k)
	for i, idx := range s.perm(len(set))[:k] {
		out[i] = set[idx]
	}
	return out
}
