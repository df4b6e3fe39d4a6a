package adapter

import (
	"strings"

	"github.com/spf13/afero"
)

// Custom exports a single user-chosen extension for platforms without a dedicated adapter.
//
// With an empty FileName every locale is written as {locale}{ext}. Otherwise the default
// locale gets {FileName}{ext} and the others {FileName}.{locale}{ext}.
type Custom struct {
	base
	Extension string
	FileName  string
}

func (Custom) Platform() Platform { return PlatformCustom }

func (c Custom) AllowedExtensions() []string {
	return []string{normalizeExtension(c.Extension)}
}

func (c Custom) DefaultFileName() string { return c.FileName }

func (c Custom) WriteLocale(fs afero.Fs, dir string, payload []byte, locale, extension string, isDefault bool) (string, error) {
	ext := normalizeExtension(extension)
	switch {
	case c.FileName == "":
		return writeFile(fs, dir, locale+ext, payload)
	case isDefault:
		return writeFile(fs, dir, c.FileName+ext, payload)
	default:
		return writeFile(fs, dir, c.FileName+"."+locale+ext, payload)
	}
}

func normalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
