package calls

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRuns        = 5
	defaultConcurrency = 5
)

// UserConfig holds the settings common to every conversion target.
type UserConfig struct {
	// Runs is the number of conversion calls to make
	Runs int
	// Concurrency is the maximum number of calls in flight at once
	Concurrency int
	// LaunchRate is the number of calls started per second. Zero means
	// calls are started as fast as Concurrency allows.
	LaunchRate rate.Limit

	// MinDelay and MaxDelay bound the simulated delay of each call,
	// drawn from [MinDelay, MaxDelay) in DelayUnit
	MinDelay int
	MaxDelay int
	// DelayUnit is a Go duration string such as "1ms" or "1s"
	DelayUnit string
	// NoDelay disables the simulated delay entirely
	NoDelay bool

	unit time.Duration
}

// Normalize fills in defaults and validates the configuration. Targets apply
// their own delay defaults before calling it.
func (c *UserConfig) Normalize() error {
	if c.Runs < 0 {
		return fmt.Errorf("Runs cannot be negative")
	}
	if c.Runs == 0 {
		c.Runs = defaultRuns
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("Concurrency cannot be negative")
	}
	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}

	if c.LaunchRate < 0 {
		return fmt.Errorf("invalid LaunchRate configuration: %v", c.LaunchRate)
	}
	if c.LaunchRate == 0 {
		c.LaunchRate = rate.Inf
	}

	if c.NoDelay {
		return nil
	}

	if c.MinDelay < 0 {
		return fmt.Errorf("MinDelay cannot be negative")
	}
	if c.MaxDelay <= c.MinDelay {
		return fmt.Errorf("MaxDelay must be greater than MinDelay")
	}

	unit, err := time.ParseDuration(c.DelayUnit)
	if err != nil {
		return fmt.Errorf("invalid DelayUnit configuration: %w", err)
	}
	if unit <= 0 {
		return fmt.Errorf("DelayUnit must be positive: %v", unit)
	}
	c.unit = unit

	return nil
}

// Unit returns the parsed DelayUnit. Only valid after Normalize.
func (c *UserConfig) Unit() time.Duration {
	return c.unit
}
