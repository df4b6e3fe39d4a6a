package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "config.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to add config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// checkSchema validates a decoded configuration document.
// Unknown keys are reported as ErrUnknownKey, wrong value types as ErrInvalidValue.
func checkSchema(doc any) error {
	schema, err := configSchema()
	if err != nil {
		return err
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	var unknown, invalid []string
	collectSchemaErrors(verr, &unknown, &invalid)

	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(unknown, ", "))
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(invalid, "; "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidValue, verr.Message)
}

func collectSchemaErrors(err *jsonschema.ValidationError, unknown, invalid *[]string) {
	if len(err.Causes) == 0 {
		if strings.HasSuffix(err.KeywordLocation, "/additionalProperties") {
			for _, key := range unknownKeys(err.Message) {
				if !slices.Contains(*unknown, key) {
					*unknown = append(*unknown, key)
				}
			}
			return
		}
		field := strings.ReplaceAll(strings.TrimPrefix(err.InstanceLocation, "/"), "/", ".")
		if field == "" {
			*invalid = append(*invalid, err.Message)
		} else {
			*invalid = append(*invalid, field+": "+err.Message)
		}
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, unknown, invalid)
	}
}

// unknownKeys extracts property names from an additionalProperties message such as
// "additionalProperties 'foo', 'bar' not allowed".
func unknownKeys(msg string) []string {
	var keys []string
	parts := strings.Split(msg, "'")
	for i := 1; i < len(parts); i += 2 {
		keys = append(keys, parts[i])
	}
	if len(keys) == 0 {
		keys = append(keys, msg)
	}
	return keys
}
