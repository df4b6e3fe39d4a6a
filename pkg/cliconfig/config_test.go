package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleloco/simpleloco/pkg/config"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

func TestLoadEnvironment_Defaults(t *testing.T) {
	cfg, err := LoadEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, DefaultConfFilePath, cfg.ConfFilePath)
	assert.Equal(t, "fastlane/Loco.platform.json", cfg.ConfFilePath)
	assert.Equal(t, config.DefaultPath, cfg.ConfFilePath)
	assert.Equal(t, loco.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.False(t, bool(cfg.NoColor))
	assert.Equal(t, SourceDefault, cfg.Sources[EnvConfFilePath])
}

func TestLoadEnvironment_Overrides(t *testing.T) {
	cfg, err := LoadEnvironment(map[string]string{
		EnvConfFilePath: "fastlane/Loco.ios.yml",
		EnvBaseURL:      "http://localhost:8080",
		EnvLogLevel:     "debug",
		EnvLogFormat:    "json",
		EnvNoColor:      "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "fastlane/Loco.ios.yml", cfg.ConfFilePath)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, bool(cfg.NoColor))
	assert.Equal(t, SourceEnv, cfg.Sources[EnvConfFilePath])
	assert.Equal(t, SourceEnv, cfg.Sources[EnvBaseURL])
}

func TestLoadEnvironment_NoColorAnyValue(t *testing.T) {
	for _, value := range []string{"yes", "1", "true", "false", "anything"} {
		t.Run(value, func(t *testing.T) {
			cfg, err := LoadEnvironment(map[string]string{EnvNoColor: value})
			require.NoError(t, err)
			assert.True(t, bool(cfg.NoColor))
		})
	}

	cfg, err := LoadEnvironment(map[string]string{EnvNoColor: ""})
	require.NoError(t, err)
	assert.False(t, bool(cfg.NoColor))
}

func TestMarkFlag(t *testing.T) {
	cfg := &CLIConfig{}
	cfg.MarkFlag(EnvConfFilePath)
	assert.Equal(t, SourceFlag, cfg.Sources[EnvConfFilePath])
}
