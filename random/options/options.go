package options

import (
	"math/rand/v2"

	"github.com/mkeeler/hexload/random/internal/options"
)

type GeneratorOption = options.GeneratorOption

// WithRand makes the generator draw from rng. The caller must not share rng
// with another goroutine while the generator is in use.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(opts *options.GeneratorOptions) {
		opts.RNG = rng
	}
}

func WithSeed(seed uint64) GeneratorOption {
	return func(opts *options.GeneratorOptions) {
		opts.RNG = options.NewRand(seed)
	}
}
