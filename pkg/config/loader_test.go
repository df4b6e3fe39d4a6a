package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleloco/simpleloco/pkg/adapter"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_ValidJSON(t *testing.T) {
	path := writeConfig(t, "Loco.android.json", `{
		"platform": "android",
		"directory": "app/src/main/res",
		"locales": ["en", "fr"],
		"key": "secret",
		"filter": ["android", "common"],
		"fallback": "en",
		"no_comments": "true"
	}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, adapter.PlatformAndroid, cfg.Platform())
	assert.Equal(t, "app/src/main/res", cfg.Directory())
	assert.Equal(t, []string{"en", "fr"}, cfg.Locales())
	assert.Equal(t, "en", cfg.DefaultLocale())
	assert.Equal(t, "secret", cfg.Key())
	assert.Equal(t, loco.Params{
		Filter:     []string{"android", "common"},
		Fallback:   "en",
		NoComments: "true",
	}, cfg.ExportParams())
	assert.IsType(t, adapter.Android{}, cfg.Adapter())
}

func TestLoadFromFile_ValidYAML(t *testing.T) {
	for _, name := range []string{"Loco.ios.yaml", "Loco.ios.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, name, `
platform: ios
directory: App/Resources
locales:
  - en
  - nl
key: secret
format: plist
no_comments: true
no_folding: false
index: 1
`)

			cfg, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, adapter.PlatformIOS, cfg.Platform())
			assert.Equal(t, []string{".strings"}, cfg.Adapter().AllowedExtensions())

			params := cfg.ExportParams()
			assert.Equal(t, "plist", params.Format)
			assert.Equal(t, "true", params.NoComments)
			assert.Equal(t, "false", params.NoFolding)
			assert.Equal(t, "1", params.Index)
		})
	}
}

func TestLoadFromFile_UnsupportedFormat(t *testing.T) {
	// Missing required fields must not be reported: the format check comes first.
	path := writeConfig(t, "Loco.txt", `platform: android`)

	cfg, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NotErrorIs(t, err, ErrMissingFields)

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".txt", formatErr.Extension)
}

func TestLoadFromFile_UnsupportedFormatBeforeRead(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/Loco.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	cfg, err := LoadFromFile("/nonexistent/path/Loco.platform.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_EmptyFile(t *testing.T) {
	path := writeConfig(t, "empty.yaml", "  \n")

	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadFromFile_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.Mkdir(dir, 0755))

	_, err := LoadFromFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestLoadFromFile_InvalidSyntax(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "bad.json", `{ invalid json }`))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = LoadFromFile(writeConfig(t, "bad.yaml", "platform: [android\n"))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadFromFile_NotAMapping(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "list.yaml", "- android\n- ios\n"))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "Loco.json", `{
		"platform": "android",
		"directory": "res",
		"locales": ["en"],
		"key": "secret",
		"output_dir": "res"
	}`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "output_dir")
}

func TestLoadFromFile_WrongType(t *testing.T) {
	path := writeConfig(t, "Loco.yaml", `
platform: android
directory: res
locales: en
key: secret
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "locales")
}

func TestLoadFromFile_ValidationError(t *testing.T) {
	path := writeConfig(t, "Loco.json", `{
		"platform": "android",
		"directory": "",
		"locales": []
	}`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), path)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"directory", "locales", "key"}, verr.Fields)
}

func TestLoadFromFile_UnsupportedPlatform(t *testing.T) {
	path := writeConfig(t, "Loco.yml", `
platform: martian
directory: out
locales: [en]
key: secret
`)

	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "martian")
}

func TestLoadFromFile_Custom(t *testing.T) {
	path := writeConfig(t, "Loco.custom.json", `{
		"platform": "custom",
		"directory": "locales",
		"locales": ["en", "de"],
		"key": "secret",
		"format": "i18next4",
		"custom_extension": "json",
		"custom_file_name": "translation"
	}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".json"}, cfg.Adapter().AllowedExtensions())
	assert.Equal(t, "translation", cfg.Adapter().DefaultFileName())
	assert.Equal(t, "i18next4", cfg.ExportParams().Format)
}

func TestParseYAML_NullValues(t *testing.T) {
	opts, err := ParseYAML([]byte(`
platform: flutter
directory: lib/l10n
locales: [en]
key: secret
format:
filter:
`))
	require.NoError(t, err)
	assert.Equal(t, Scalar(""), opts.Format)
	assert.Nil(t, opts.Filter)
}
