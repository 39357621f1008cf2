package native

import (
	"github.com/mkeeler/hexload/load/calls"
	"github.com/mkeeler/hexload/load/config"
	"github.com/mkeeler/hexload/random/delay"
)

const defaultDelayUnit = "1ms"

// UserConfig is the configuration for the native conversion target
type UserConfig struct {
	calls.UserConfig

	// Label prefixes every diagnostic line, "C function" by default
	Label string
}

func (c *UserConfig) Normalize() error {
	if c.Label == "" {
		c.Label = "C function"
	}

	if !c.NoDelay && c.MinDelay == 0 && c.MaxDelay == 0 {
		c.MinDelay = delay.DefaultMin
		c.MaxDelay = delay.DefaultMax
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
