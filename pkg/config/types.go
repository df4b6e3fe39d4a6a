package config

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/simpleloco/simpleloco/pkg/adapter"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

// Options is the raw content of a configuration file.
// Field names in files are the json tags below.
type Options struct {
	Platform  string   `json:"platform" validate:"required"`
	Directory string   `json:"directory" validate:"required"`
	Locales   []string `json:"locales" validate:"required,min=1,dive,required"`
	Key       string   `json:"key" validate:"required"`

	// Optional export parameters, forwarded to Loco when set.
	Format     Scalar   `json:"format,omitempty"`
	Filter     []string `json:"filter,omitempty"`
	Index      Scalar   `json:"index,omitempty"`
	Source     Scalar   `json:"source,omitempty"`
	Namespace  Scalar   `json:"namespace,omitempty"`
	Fallback   Scalar   `json:"fallback,omitempty"`
	Order      Scalar   `json:"order,omitempty"`
	Status     Scalar   `json:"status,omitempty"`
	Printf     Scalar   `json:"printf,omitempty"`
	Charset    Scalar   `json:"charset,omitempty"`
	Breaks     Scalar   `json:"breaks,omitempty"`
	NoComments Scalar   `json:"no_comments,omitempty"`
	NoFolding  Scalar   `json:"no_folding,omitempty"`

	// Custom platform settings.
	CustomExtension string `json:"custom_extension,omitempty" validate:"required_if=Platform custom"`
	CustomFileName  string `json:"custom_file_name,omitempty"`
}

// Scalar is an option value that may be written as a string, boolean or number.
// It keeps the textual form, so `no_comments: true` becomes "true".
type Scalar string

// UnmarshalJSON accepts any JSON scalar.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	default:
		*s = Scalar(data)
	}
	return nil
}

// Config is a validated export configuration. It is read-only after New.
type Config struct {
	platform  adapter.Platform
	directory string
	locales   []string
	key       string
	params    loco.Params
	adapter   adapter.Adapter
}

// Platform returns the target platform.
func (c *Config) Platform() adapter.Platform { return c.platform }

// Directory returns the base output directory.
func (c *Config) Directory() string { return c.directory }

// Locales returns the locales in configured order; the first one is the default locale.
func (c *Config) Locales() []string { return slices.Clone(c.locales) }

// DefaultLocale returns the first configured locale.
func (c *Config) DefaultLocale() string { return c.locales[0] }

// Key returns the Loco API key.
func (c *Config) Key() string { return c.key }

// ExportParams returns the optional query parameters sent with every export request.
func (c *Config) ExportParams() loco.Params {
	p := c.params
	p.Filter = slices.Clone(c.params.Filter)
	return p
}

// Adapter returns the platform adapter selected for this configuration.
func (c *Config) Adapter() adapter.Adapter { return c.adapter }

func (o Options) params() loco.Params {
	return loco.Params{
		Format:     string(o.Format),
		Filter:     slices.Clone(o.Filter),
		Index:      string(o.Index),
		Source:     string(o.Source),
		Namespace:  string(o.Namespace),
		Fallback:   string(o.Fallback),
		Order:      string(o.Order),
		Status:     string(o.Status),
		Printf:     string(o.Printf),
		Charset:    string(o.Charset),
		Breaks:     string(o.Breaks),
		NoComments: string(o.NoComments),
		NoFolding:  string(o.NoFolding),
	}
}
