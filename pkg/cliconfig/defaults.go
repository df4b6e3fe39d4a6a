package cliconfig

import (
	"github.com/simpleloco/simpleloco/pkg/config"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

// Environment variable names.
const (
	EnvConfFilePath = "LOCO_CONF_FILE_PATH"
	EnvBaseURL      = "LOCO_BASE_URL"
	EnvLogLevel     = "LOCO_LOG_LEVEL"
	EnvLogFormat    = "LOCO_LOG_FORMAT"
	EnvNoColor      = "NO_COLOR"
)

// Default values.
const (
	DefaultConfFilePath = config.DefaultPath
	DefaultBaseURL      = loco.DefaultBaseURL
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	return &CLIConfig{
		ConfFilePath: DefaultConfFilePath,
		BaseURL:      DefaultBaseURL,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Sources: map[string]string{
			EnvConfFilePath: SourceDefault,
			EnvBaseURL:      SourceDefault,
			EnvLogLevel:     SourceDefault,
			EnvLogFormat:    SourceDefault,
		},
	}
}
