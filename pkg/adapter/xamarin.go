package adapter

import "github.com/spf13/afero"

// Xamarin writes AppResources.resx for the default locale and
// AppResources.{locale}.resx for the others.
type Xamarin struct {
	base
}

func (Xamarin) Platform() Platform { return PlatformXamarin }

func (Xamarin) AllowedExtensions() []string { return []string{".resx"} }

func (Xamarin) DefaultFileName() string { return "AppResources" }

func (x Xamarin) WriteLocale(fs afero.Fs, dir string, payload []byte, locale, extension string, isDefault bool) (string, error) {
	if isDefault {
		return writeFile(fs, dir, x.DefaultFileName()+extension, payload)
	}
	return writeFile(fs, dir, x.DefaultFileName()+"."+locale+extension, payload)
}
