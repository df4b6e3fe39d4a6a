package adapter

import "github.com/spf13/afero"

// Flutter writes intl_messages_{locale}.arb files side by side in the export root.
type Flutter struct {
	base
}

func (Flutter) Platform() Platform { return PlatformFlutter }

func (Flutter) AllowedExtensions() []string { return []string{".arb"} }

func (Flutter) DefaultFileName() string { return "intl_messages_" }

// WriteLocale ignores isDefault; every locale is named after itself.
func (f Flutter) WriteLocale(fs afero.Fs, dir string, payload []byte, locale, extension string, _ bool) (string, error) {
	return writeFile(fs, dir, f.DefaultFileName()+locale+extension, payload)
}
