package input

import (
	"math/rand"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/mkeeler/hexload/random/internal/options"
)

const DefaultPhraseWords = 3

// petname draws its words from the global math/rand source, which is reseeded
// for every phrase while this lock is held.
var petnameLock sync.Mutex

type PhraseGenerator struct {
	*options.GeneratorOptions
	words int
}

// NewPhraseGenerator returns a generator of human readable inputs such as
// "wildly happy otter". Phrases are fully determined by the generator's seed.
func NewPhraseGenerator(words int, opts ...options.GeneratorOption) *PhraseGenerator {
	if words < 1 {
		words = DefaultPhraseWords
	}
	return &PhraseGenerator{
		GeneratorOptions: options.ApplyGeneratorOptions(opts),
		words:            words,
	}
}

func (g *PhraseGenerator) Generate() string {
	petnameLock.Lock()
	defer petnameLock.Unlock()

	rand.Seed(g.RNG.Int64())
	return petname.Generate(g.words, " ")
}
