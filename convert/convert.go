// Package convert bundles a spaced hex conversion with a seeded blocking delay
// and a diagnostic line, the shape of call a foreign host uses to measure call
// overhead.
//
// A Converter owns its random generator. Seeding one converter never affects
// another, and a single converter may be shared between goroutines.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/random/delay"
	"github.com/mkeeler/hexload/spacedhex"
)

// EncodeFunc writes the encoding of src plus a terminator into dst. It must
// fail without writing when dst is too small.
type EncodeFunc func(dst, src []byte) (int, error)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Call describes a completed conversion.
type Call struct {
	ID int
	// N is the encoded length, excluding the terminator.
	N int
	// Units is the delay as drawn, before scaling.
	Units int
	Delay time.Duration
}

type Converter struct {
	rngLock sync.Mutex
	delay   *delay.Generator

	outLock sync.Mutex
	out     io.Writer

	label  string
	encode EncodeFunc
	sleep  Sleeper
	logger hclog.Logger
}

func New(opts ...Option) (*Converter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Converter{
		out:    o.out,
		label:  o.label,
		encode: o.encode,
		sleep:  o.sleep,
		logger: o.logger,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.encode == nil {
		c.encode = spacedhex.Encode
	}
	if c.sleep == nil {
		c.sleep = Sleep
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}

	if !o.noDelay {
		gen, err := delay.NewGenerator(o.min, o.max, o.unit)
		if err != nil {
			return nil, fmt.Errorf("error configuring delay: %w", err)
		}
		if o.seed != nil {
			gen.Seed(*o.seed)
		}
		c.delay = gen
	}

	return c, nil
}

// Seed resets the delay generator so that subsequent draws are determined by
// seed and call order.
func (c *Converter) Seed(seed int64) {
	c.rngLock.Lock()
	defer c.rngLock.Unlock()

	if c.delay != nil {
		c.delay.Seed(seed)
	}
}

// Convert encodes src into dst, blocks for a pseudo-random delay, then writes
// one diagnostic line identifying callID. Capacity is checked before anything
// else happens; on failure dst is untouched, no delay is drawn and nothing is
// written to the diagnostics.
func (c *Converter) Convert(ctx context.Context, dst, src []byte, callID int) (Call, error) {
	call := Call{ID: callID}

	n, err := c.encode(dst, src)
	if err != nil {
		c.logger.Debug("conversion rejected", "id", callID, "input-bytes", len(src), "buffer-bytes", len(dst), "error", err)
		return call, fmt.Errorf("error converting call %d: %w", callID, err)
	}
	call.N = n
	call.Units, call.Delay = c.draw()

	c.logger.Trace("converted input", "id", callID, "input-bytes", len(src), "delay", call.Delay)

	if call.Delay > 0 {
		if err := c.sleep(ctx, call.Delay); err != nil {
			return call, err
		}
	}

	c.emit(callID, dst[:n], call.Units)
	return call, nil
}

// ConvertString sizes the output buffer itself and returns the encoded text.
func (c *Converter) ConvertString(ctx context.Context, input string, callID int) (string, Call, error) {
	buf := make([]byte, spacedhex.BufferLen(len(input)))

	call, err := c.Convert(ctx, buf, []byte(input), callID)
	if err != nil {
		return "", call, err
	}
	return string(buf[:call.N]), call, nil
}

func (c *Converter) draw() (int, time.Duration) {
	if c.delay == nil {
		return 0, 0
	}

	c.rngLock.Lock()
	defer c.rngLock.Unlock()

	units := c.delay.Draw()
	return units, c.delay.Duration(units)
}

func (c *Converter) emit(callID int, encoded []byte, units int) {
	c.outLock.Lock()
	defer c.outLock.Unlock()

	fmt.Fprintf(c.out, "[%s %d] %s --> timeout: %d\n", c.label, callID, encoded, units)
}

// Sleep is the default Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
