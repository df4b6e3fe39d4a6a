package adapter

import "github.com/spf13/afero"

// Android places strings.xml into values/ for the default locale and values-{locale}/
// for the others.
type Android struct {
	base
}

func (Android) Platform() Platform { return PlatformAndroid }

func (Android) AllowedExtensions() []string { return []string{".xml"} }

func (Android) Directory(locale string, isDefault bool) string {
	if isDefault {
		return "values"
	}
	return "values-" + locale
}

func (Android) DefaultFileName() string { return "strings" }

func (a Android) WriteLocale(fs afero.Fs, dir string, payload []byte, _ string, extension string, _ bool) (string, error) {
	return a.writeDefault(fs, dir, a.DefaultFileName(), payload, extension)
}
