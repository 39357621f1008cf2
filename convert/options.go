package convert

import (
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/random/delay"
)

const DefaultLabel = "C function"

type converterOptions struct {
	seed    *int64
	min     int
	max     int
	unit    time.Duration
	noDelay bool

	out    io.Writer
	label  string
	encode EncodeFunc
	sleep  Sleeper
	logger hclog.Logger
}

type Option func(*converterOptions)

func defaultOptions() *converterOptions {
	return &converterOptions{
		min:    delay.DefaultMin,
		max:    delay.DefaultMax,
		unit:   delay.DefaultUnit,
		label:  DefaultLabel,
		sleep:  Sleep,
		logger: hclog.NewNullLogger(),
	}
}

// WithSeed seeds the delay generator the same way Seed does.
func WithSeed(seed int64) Option {
	return func(o *converterOptions) {
		o.seed = &seed
	}
}

// WithDelay sets the delay range to [min, max) units.
func WithDelay(min, max int, unit time.Duration) Option {
	return func(o *converterOptions) {
		o.min = min
		o.max = max
		o.unit = unit
		o.noDelay = false
	}
}

// WithoutDelay makes Convert return as soon as the diagnostic is written.
func WithoutDelay() Option {
	return func(o *converterOptions) {
		o.noDelay = true
	}
}

// WithDiagnostics sets where the per call diagnostic line goes. A nil
// writer discards them.
func WithDiagnostics(w io.Writer) Option {
	return func(o *converterOptions) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

func WithLabel(label string) Option {
	return func(o *converterOptions) {
		o.label = label
	}
}

func WithEncoder(fn EncodeFunc) Option {
	return func(o *converterOptions) {
		o.encode = fn
	}
}

func WithSleeper(fn Sleeper) Option {
	return func(o *converterOptions) {
		o.sleep = fn
	}
}

func WithLogger(logger hclog.Logger) Option {
	return func(o *converterOptions) {
		o.logger = logger
	}
}
