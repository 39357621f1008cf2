// Package delay draws the pseudo-random pause that is bundled with each
// conversion call.
package delay

import (
	"fmt"
	"time"

	"github.com/mkeeler/hexload/random/internal/options"
)

const (
	DefaultMin  = 0
	DefaultMax  = 10000
	DefaultUnit = time.Millisecond
)

// Generator draws integers in [min, max) and scales them by unit. It is not
// safe for concurrent use; owners that share one must serialize access.
type Generator struct {
	*options.GeneratorOptions
	min  int
	max  int
	unit time.Duration
}

func NewGenerator(min, max int, unit time.Duration, opts ...options.GeneratorOption) (*Generator, error) {
	if min < 0 {
		return nil, fmt.Errorf("minimum delay cannot be negative: %d", min)
	}
	if max <= min {
		return nil, fmt.Errorf("maximum delay %d must be greater than minimum delay %d", max, min)
	}
	if unit <= 0 {
		return nil, fmt.Errorf("delay unit must be positive: %v", unit)
	}

	return &Generator{
		GeneratorOptions: options.ApplyGeneratorOptions(opts),
		min:              min,
		max:              max,
		unit:             unit,
	}, nil
}

// NewDefaultGenerator draws milliseconds in [0, 10000).
func NewDefaultGenerator(opts ...options.GeneratorOption) *Generator {
	g, _ := NewGenerator(DefaultMin, DefaultMax, DefaultUnit, opts...)
	return g
}

// Seed resets the generator to the state derived from seed. Subsequent draws
// are deterministic for a given seed and call order.
func (g *Generator) Seed(seed int64) {
	g.RNG = options.NewRand(uint64(seed))
}

// Draw returns the next delay in units.
func (g *Generator) Draw() int {
	return g.min + g.RNG.IntN(g.max-g.min)
}

// Duration converts a value returned by Draw into a time.Duration.
func (g *Generator) Duration(units int) time.Duration {
	return time.Duration(units) * g.unit
}
