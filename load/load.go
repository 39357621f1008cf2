package load

import (
	"context"
	"io"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/load/config"
	"github.com/mkeeler/hexload/load/native"
	"github.com/mkeeler/hexload/load/reference"
	"github.com/mkeeler/hexload/metrics"
	"github.com/mkeeler/hexload/random/input"
	"github.com/mkeeler/hexload/random/options"
	"golang.org/x/sync/errgroup"
)

type SubLoadGenerator interface {
	Initialize(ctx context.Context) error
	Run(ctx context.Context) error
}

type LoadGenerator struct {
	conf           Config
	input          []byte
	generators     []SubLoadGenerator
	implementation []string
}

func NewLoadGenerator(logger hclog.Logger, conf Config, metricsServer *metrics.MetricsServer, diagnostics io.Writer) *LoadGenerator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	lg := &LoadGenerator{
		conf: conf,
	}

	rng := rand.New(rand.NewPCG(uint64(conf.Seed), 0))

	// The input is resolved from the first draw so that it stays the same
	// for a seed no matter which targets are enabled.
	inputRng := rand.New(rand.NewPCG(rng.Uint64(), 0))
	switch {
	case conf.Input != "":
		lg.input = []byte(conf.Input)
	case conf.InputBytes > 0:
		lg.input = input.NewBytesGenerator(options.WithRand(inputRng)).Generate(conf.InputBytes)
	default:
		lg.input = []byte(input.NewPhraseGenerator(conf.InputWords, options.WithRand(inputRng)).Generate())
	}

	// Each target gets its own seed, drawn whether or not the target is
	// enabled, so enabling one never changes the calls of another.
	gc := config.GeneratorConfig{
		Input:         lg.input,
		MetricsServer: metricsServer,
		Diagnostics:   config.SyncWriter(diagnostics),
		Logger:        logger,
	}

	nativeSeed := rng.Uint64()
	if conf.Native != nil {
		lg.generators = append(lg.generators, native.NewLoadGenerator(native.Config{
			UserConfig:      *conf.Native,
			GeneratorConfig: gc.WithSeed(nativeSeed),
		}))
		lg.implementation = append(lg.implementation, native.Implementation)
	}

	referenceSeed := rng.Uint64()
	if conf.Reference != nil {
		lg.generators = append(lg.generators, reference.NewLoadGenerator(reference.Config{
			UserConfig:      *conf.Reference,
			GeneratorConfig: gc.WithSeed(referenceSeed),
		}))
		lg.implementation = append(lg.implementation, reference.Implementation)
	}

	logger.Debug("resolved conversion input", "bytes", len(lg.input))

	return lg
}

// Input is the byte string every call converts.
func (lg *LoadGenerator) Input() []byte {
	return lg.input
}

// Implementations names the enabled targets, as used in metric labels.
func (lg *LoadGenerator) Implementations() []string {
	return lg.implementation
}

func (lg *LoadGenerator) Run(ctx context.Context) error {
	for _, subGen := range lg.generators {
		err := subGen.Initialize(ctx)
		if err != nil {
			return err
		}
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	for _, subGen := range lg.generators {
		grp.Go(func() error {
			return subGen.Run(grpCtx)
		})
	}

	return grp.Wait()
}
