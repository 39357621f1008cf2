package reference

import (
	"github.com/mkeeler/hexload/load/calls"
	"github.com/mkeeler/hexload/load/config"
)

const (
	defaultMinDelay  = 1
	defaultMaxDelay  = 11
	defaultDelayUnit = "1s"
)

// UserConfig is the configuration for the reference conversion target. Its
// delay defaults to 1 to 10 seconds.
type UserConfig struct {
	calls.UserConfig

	Label string
}

func (c *UserConfig) Normalize() error {
	if c.Label == "" {
		c.Label = "Go reference"
	}

	if !c.NoDelay && c.MinDelay == 0 && c.MaxDelay == 0 {
		c.MinDelay = defaultMinDelay
		c.MaxDelay = defaultMaxDelay
	}

	if c.DelayUnit == "" {
		c.DelayUnit = defaultDelayUnit
	}

	return c.UserConfig.Normalize()
}

type Config struct {
	UserConfig
	config.GeneratorConfig
}
