package reference

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/convert"
	"github.com/mkeeler/hexload/load/calls"
	"github.com/mkeeler/hexload/load/config"
)

const Implementation = "reference"

type LoadGenerator struct {
	config.GeneratorConfig
	conf   UserConfig
	runner *calls.Runner
}

func NewLoadGenerator(conf Config) *LoadGenerator {
	return &LoadGenerator{
		GeneratorConfig: conf.GeneratorConfig.WithLogger(conf.Logger.Named(Implementation)),
		conf:            conf.UserConfig,
	}
}

func (lg *LoadGenerator) Initialize(ctx context.Context) error {
	lg.runner = calls.NewRunner(Implementation, lg.conf.UserConfig, lg.GeneratorConfig, lg.newConverter)
	return nil
}

func (lg *LoadGenerator) Run(ctx context.Context) error {
	_, err := lg.runner.Run(ctx)
	return err
}

func (lg *LoadGenerator) newConverter(seed int64, logger hclog.Logger) (*convert.Converter, error) {
	opts := []convert.Option{
		convert.WithSeed(seed),
		convert.WithEncoder(encode),
		convert.WithLabel(lg.conf.Label),
		convert.WithDiagnostics(lg.Diagnostics),
		convert.WithLogger(logger),
	}
	if lg.conf.NoDelay {
		opts = append(opts, convert.WithoutDelay())
	} else {
		opts = append(opts, convert.WithDelay(lg.conf.MinDelay, lg.conf.MaxDelay, lg.conf.Unit()))
	}

	return convert.New(opts...)
}
