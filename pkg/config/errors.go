package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simpleloco/simpleloco/pkg/adapter"
)

// Common errors for configuration loading and validation.
var (
	ErrFileNotFound        = errors.New("configuration file not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInvalidJSON         = errors.New("invalid JSON syntax")
	ErrInvalidYAML         = errors.New("invalid YAML syntax")
	ErrEmptyFile           = errors.New("configuration file is empty")
	ErrUnsupportedFormat   = errors.New("unsupported config file format")
	ErrUnknownKey          = errors.New("unknown configuration key")
	ErrInvalidValue        = errors.New("invalid configuration value")
	ErrMissingFields       = errors.New("required fields are missing")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// ValidationError lists every required field missing from a configuration.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "not all required fields are filled: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrMissingFields }

// UnsupportedPlatformError reports a platform value no adapter exists for.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	names := make([]string, len(adapter.Platforms))
	for i, p := range adapter.Platforms {
		names[i] = string(p)
	}
	return fmt.Sprintf("unsupported platform '%s' (supported: %s)", e.Platform, strings.Join(names, ", "))
}

func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// UnsupportedFormatError reports a configuration file with an unknown extension.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config file format %q, only JSON and YAML files are supported", e.Extension)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
