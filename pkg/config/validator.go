package config

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/simpleloco/simpleloco/pkg/adapter"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under the names used in configuration files.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// New validates opts and builds a Config with the adapter for its platform.
//
// Every missing required field is reported at once in a *ValidationError.
// An unknown platform yields an *UnsupportedPlatformError.
func New(opts Options) (*Config, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}

	platform, ok := adapter.ParsePlatform(opts.Platform)
	if !ok {
		return nil, &UnsupportedPlatformError{Platform: opts.Platform}
	}

	a, err := adapter.New(platform, adapter.Options{
		Format:          string(opts.Format),
		CustomExtension: opts.CustomExtension,
		CustomFileName:  opts.CustomFileName,
	})
	if err != nil {
		return nil, &UnsupportedPlatformError{Platform: opts.Platform}
	}

	return &Config{
		platform:  platform,
		directory: opts.Directory,
		locales:   slices.Clone(opts.Locales),
		key:       opts.Key,
		params:    opts.params(),
		adapter:   a,
	}, nil
}

// Validate checks that every required field is present.
func Validate(opts Options) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var fields []string
	for _, fe := range verrs {
		field := fe.Field()
		// locales[2] -> locales
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		if !slices.Contains(fields, field) {
			fields = append(fields, field)
		}
	}
	return &ValidationError{Fields: fields}
}
