package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load returns the defaults overridden by environment variables.
func Load() (*CLIConfig, error) {
	return LoadEnvironment(nil)
}

// LoadEnvironment is Load with an explicit environment; nil means the process environment.
func LoadEnvironment(environment map[string]string) (*CLIConfig, error) {
	cfg := NewDefault()
	opts := env.Options{
		Environment: environment,
		OnSet: func(tag string, _ any, isDefault bool) {
			if isDefault {
				cfg.Sources[tag] = SourceDefault
			} else {
				cfg.Sources[tag] = SourceEnv
			}
		},
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// MarkFlag records that a value was set by a command-line flag.
func (c *CLIConfig) MarkFlag(envName string) {
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	c.Sources[envName] = SourceFlag
}
