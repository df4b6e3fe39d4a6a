// Package cliconfig provides the settings of the simpleloco command itself.
package cliconfig

// CLIConfig holds the tool settings, as opposed to the export configuration file.
// Values come from, in increasing priority:
// 1. Default values (NewDefault)
// 2. Environment variables
// 3. Command-line flags
type CLIConfig struct {
	// ConfFilePath is the export configuration file.
	ConfFilePath string `env:"LOCO_CONF_FILE_PATH"`

	// BaseURL is the Loco API host.
	BaseURL string `env:"LOCO_BASE_URL"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOCO_LOG_LEVEL"`

	// LogFormat is text or json.
	LogFormat string `env:"LOCO_LOG_FORMAT"`

	// NoColor disables colored output.
	NoColor Presence `env:"NO_COLOR"`

	// Sources tracks where each value came from, keyed by environment variable name.
	Sources map[string]string `env:"-"`
}

// Presence is a switch that is on whenever its variable is set to a non-empty value,
// following the NO_COLOR convention. "yes", "1" and "false" all turn it on.
type Presence bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Presence) UnmarshalText(text []byte) error {
	*p = len(text) > 0
	return nil
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)
