// Package calls drives a batch of conversion calls against one target,
// the way a host runtime fans work out to a native library.
package calls

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/convert"
	"github.com/mkeeler/hexload/load/config"
	"github.com/mkeeler/hexload/spacedhex"
	"golang.org/x/sync/errgroup"
)

// Every call gets its own converter seeded from [minCallSeed, maxCallSeed].
const (
	minCallSeed = 1000
	maxCallSeed = 10000
)

const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// ConverterFactory builds the converter for a single call.
type ConverterFactory func(seed int64, logger hclog.Logger) (*convert.Converter, error)

type Summary struct {
	Succeeded int64
	Failed    int64
	Canceled  int64
}

type Runner struct {
	config.GeneratorConfig
	conf           UserConfig
	implementation string
	rng            *rand.Rand
	newConverter   ConverterFactory
}

func NewRunner(implementation string, conf UserConfig, gc config.GeneratorConfig, factory ConverterFactory) *Runner {
	if gc.Logger == nil {
		gc.Logger = hclog.NewNullLogger()
	}

	return &Runner{
		GeneratorConfig: gc,
		conf:            conf,
		implementation:  implementation,
		rng:             rand.New(rand.NewPCG(gc.Seed, 0)),
		newConverter:    factory,
	}
}

// Run makes the configured number of calls and waits for all of them. A
// failing call is counted and logged but does not stop the others. Context
// cancellation stops launching new calls and is not reported as an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	r.Logger.Info("starting conversion runs", "runs", r.conf.Runs, "concurrency", r.conf.Concurrency, "input-bytes", len(r.Input))
	defer r.Logger.Info("conversion runs have finished")

	var succeeded, failed, canceled atomic.Int64

	limiter := newWrappedLimiter(r.conf.LaunchRate)
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(r.conf.Concurrency)

	var launchErr error
	for id := 0; id < r.conf.Runs; id++ {
		if err := limiter.Wait(grpCtx); err != nil {
			launchErr = err
			break
		}

		seed := int64(minCallSeed + r.rng.IntN(maxCallSeed-minCallSeed+1))
		grp.Go(func() error {
			err := r.call(grpCtx, id, seed)
			switch {
			case err == nil:
				succeeded.Add(1)
			case isContextError(err):
				canceled.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}

	err := grp.Wait()
	summary := Summary{
		Succeeded: succeeded.Load(),
		Failed:    failed.Load(),
		Canceled:  canceled.Load(),
	}
	r.Logger.Info("conversion summary", "succeeded", summary.Succeeded, "failed", summary.Failed, "canceled", summary.Canceled)

	if launchErr != nil {
		return summary, nilContextError(launchErr)
	}
	return summary, err
}

func (r *Runner) call(ctx context.Context, id int, seed int64) error {
	logger := r.Logger.With("id", id)
	logger.Info("starting run", "seed", seed)
	defer logger.Info("run closed")

	conv, err := r.newConverter(seed, logger)
	if err != nil {
		logger.Error("error creating converter", "error", err)
		r.observe(0, StatusError, 0)
		return err
	}

	buf := make([]byte, spacedhex.BufferLen(len(r.Input)))
	start := time.Now()
	call, err := conv.Convert(ctx, buf, r.Input, id)
	elapsed := time.Since(start)

	if err != nil {
		if isContextError(err) {
			logger.Info("run interrupted", "error", err)
			r.observe(elapsed, StatusCanceled, 0)
		} else {
			logger.Error("conversion failed", "error", err)
			r.observe(elapsed, StatusError, 0)
		}
		return err
	}

	logger.Debug("conversion finished", "delay", call.Delay, "elapsed", elapsed)
	r.observe(elapsed, StatusSuccess, len(r.Input))
	return nil
}

func (r *Runner) observe(elapsed time.Duration, status string, encoded int) {
	if r.MetricsServer == nil {
		return
	}

	r.MetricsServer.IncLatencyHistogram(elapsed, r.implementation, status)
	if encoded > 0 {
		r.MetricsServer.AddEncodedBytes(r.implementation, encoded)
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func nilContextError(err error) error {
	if isContextError(err) {
		return nil
	}
	return err
}
