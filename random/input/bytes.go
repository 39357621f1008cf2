package input

import (
	"math/rand/v2"

	"github.com/mkeeler/hexload/random/internal/options"
)

// BytesGenerator produces arbitrary binary inputs, NUL bytes included.
type BytesGenerator struct {
	dataSource *rand.ChaCha8
}

func chacha8Seed(rng *rand.Rand) [32]uint8 {
	var seed [32]uint8
	for i := 0; i < 4; i++ {
		val := rng.Uint64()
		for b := 0; b < 8; b++ {
			seed[i*8+b] = uint8(val >> (56 - 8*b) & 0xFF)
		}
	}
	return seed
}

func NewBytesGenerator(opts ...options.GeneratorOption) *BytesGenerator {
	gopts := options.ApplyGeneratorOptions(opts)

	return &BytesGenerator{
		dataSource: rand.NewChaCha8(chacha8Seed(gopts.RNG)),
	}
}

func (g *BytesGenerator) Generate(numBytes int) []byte {
	buf := make([]byte, numBytes)
	_, _ = g.dataSource.Read(buf)
	return buf
}
