package sampling

import (
	"math/rand/v2"
)

// Option applies a configuration option to the Sampler.
type Option func(*Sampler)

// WithSource makes the sampler draw from src instead of the process-wide
// generator. Draws from a custom source are serialized.
func WithSource(src rand.Source) Option {
	return func(s *Sampler) {
		if src != nil {
			s.rng = rand.New(src)
		}
	}
}

// WithSeed is WithSource over a PCG generator, for reproducible sequences.
func WithSeed(seed1, seed2 uint64) Option {
	return WithSource(rand.NewPCG(seed1, seed2))
}
