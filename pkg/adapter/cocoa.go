package adapter

import "github.com/spf13/afero"

// Cocoa writes Localizable.strings and Localizable.stringsdict into {locale}.lproj.
// With the plist format only InfoPlist.strings is exported.
type Cocoa struct {
	base
	Format string
}

func (Cocoa) Platform() Platform { return PlatformIOS }

func (c Cocoa) AllowedExtensions() []string {
	if c.Format == FormatPlist {
		return []string{".strings"}
	}
	return []string{".strings", ".stringsdict"}
}

func (Cocoa) Directory(locale string, _ bool) string {
	return locale + ".lproj"
}

func (c Cocoa) DefaultFileName() string {
	if c.Format == FormatPlist {
		return "InfoPlist"
	}
	return "Localizable"
}

func (c Cocoa) WriteLocale(fs afero.Fs, dir string, payload []byte, _ string, extension string, _ bool) (string, error) {
	return c.writeDefault(fs, dir, c.DefaultFileName(), payload, extension)
}
