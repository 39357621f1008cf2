package load

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mkeeler/hexload/load/native"
	"github.com/mkeeler/hexload/load/reference"
)

type Config struct {
	// Seed makes a whole load run reproducible. Zero means the command
	// picks one.
	Seed int64

	// Input is the text every call converts. When empty an input is
	// generated, either InputBytes random bytes or a phrase of
	// InputWords words.
	Input      string
	InputWords int
	InputBytes int

	Native    *native.UserConfig
	Reference *reference.UserConfig
}

// DefaultConfig runs five native calls, the same shape as the original
// threaded Python host.
func DefaultConfig() Config {
	return Config{
		Native: &native.UserConfig{},
	}
}

func (c *Config) Normalize() error {
	var result *multierror.Error

	if c.Native == nil && c.Reference == nil {
		result = multierror.Append(result, errors.New("at least one of Native or Reference must be configured"))
	}

	if c.InputWords < 0 {
		result = multierror.Append(result, errors.New("InputWords cannot be negative"))
	}

	if c.InputBytes < 0 {
		result = multierror.Append(result, errors.New("InputBytes cannot be negative"))
	}

	if c.Input != "" && c.InputBytes > 0 {
		result = multierror.Append(result, errors.New("Input and InputBytes are mutually exclusive"))
	}

	if c.Native != nil {
		if err := c.Native.Normalize(); err != nil {
			result = multierror.Append(result, fmt.Errorf("error validating Native configuration: %w", err))
		}
	}

	if c.Reference != nil {
		if err := c.Reference.Normalize(); err != nil {
			result = multierror.Append(result, fmt.Errorf("error validating Reference configuration: %w", err))
		}
	}

	return result.ErrorOrNil()
}

func ReadConfig(path string) (Config, error) {
	var conf Config
	fp, err := os.Open(path)
	if err != nil {
		return conf, fmt.Errorf("error opening config: %w", err)
	}
	defer fp.Close()

	dec := json.NewDecoder(fp)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&conf); err != nil {
		return conf, fmt.Errorf("error decoding config: %w", err)
	}

	if err := conf.Normalize(); err != nil {
		return conf, fmt.Errorf("error normalizing config: %w", err)
	}

	return conf, nil
}
