package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "fastlane/Loco.platform.json"

// SupportedExtensions lists the accepted configuration file extensions.
var SupportedExtensions = []string{".json", ".yaml", ".yml"}

// LoadFromFile reads, checks and validates a configuration file.
// The format is chosen by extension; anything other than .json, .yaml or .yml is
// rejected with an *UnsupportedFormatError before the file is opened.
func LoadFromFile(path string) (*Config, error) {
	opts, err := LoadOptions(path)
	if err != nil {
		return nil, err
	}

	cfg, err := New(*opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptions reads a configuration file into Options without validating
// required fields.
func LoadOptions(path string) (*Options, error) {
	ext := filepath.Ext(path)
	if !slices.Contains(SupportedExtensions, strings.ToLower(ext)) {
		return nil, &UnsupportedFormatError{Extension: ext}
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(ext, ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return data, nil
}

// ParseJSON parses a JSON configuration document.
func ParseJSON(data []byte) (*Options, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return decode(doc, data)
}

// ParseYAML parses a YAML configuration document.
func ParseYAML(data []byte) (*Options, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	// Round-trip through JSON so schema checks and decoding see one representation.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return decode(doc, jsonData)
}

func decode(doc any, jsonData []byte) (*Options, error) {
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: configuration must be a mapping of option names to values", ErrInvalidValue)
	}

	if err := checkSchema(doc); err != nil {
		return nil, err
	}

	var opts Options
	if err := json.Unmarshal(jsonData, &opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return &opts, nil
}
