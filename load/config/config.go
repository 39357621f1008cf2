package config

import (
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/metrics"
)

type GeneratorConfig struct {
	// Seed is a 64 bit integer value used to seed creation
	// of a load generators pseudo random number generator
	Seed uint64

	// Input is the byte string every call of a run converts
	Input []byte

	// MetricsServer is the metrics server that a load generator
	// may use for emitting metrics
	MetricsServer *metrics.MetricsServer

	// Diagnostics receives one line per completed call. It is shared
	// between generators so it must be wrapped with SyncWriter.
	Diagnostics io.Writer

	// Logger is a logger.
	Logger hclog.Logger
}

func (gc GeneratorConfig) WithSeed(seed uint64) GeneratorConfig {
	// because the receiver is not a pointer value we can just
	// override and return.
	gc.Seed = seed
	return gc
}

func (gc GeneratorConfig) WithLogger(logger hclog.Logger) GeneratorConfig {
	gc.Logger = logger
	return gc
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// SyncWriter serializes writes to w so that lines from concurrent calls
// never interleave.
func SyncWriter(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	if _, ok := w.(*syncWriter); ok {
		return w
	}
	return &syncWriter{w: w}
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
