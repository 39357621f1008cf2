package options

import (
	"math/rand/v2"
	"time"
)

type GeneratorOptions struct {
	RNG *rand.Rand
}

type GeneratorOption func(*GeneratorOptions)

// NewRand returns a PCG backed generator whose output is fully determined by
// the seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func DefaultOptions() *GeneratorOptions {
	return &GeneratorOptions{
		RNG: NewRand(uint64(time.Now().UnixNano())),
	}
}

func ApplyGeneratorOptions(opts []GeneratorOption) *GeneratorOptions {
	g := DefaultOptions()
	for _, opt := range opts {
		opt(g)
	}
	return g
}
