package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Platform identifies the target platform of an export.
type Platform string

// Supported platforms.
const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformFlutter Platform = "flutter"
	PlatformXamarin Platform = "xamarin"
	PlatformCustom  Platform = "custom"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{
	PlatformAndroid,
	PlatformIOS,
	PlatformFlutter,
	PlatformXamarin,
	PlatformCustom,
}

// FormatPlist is the Cocoa export format that produces InfoPlist.strings.
const FormatPlist = "plist"

// File and directory permissions used when writing exports.
const (
	DirPerm  = 0755
	FilePerm = 0644
)

// ParsePlatform maps a configuration value to a Platform.
// The second return value is false for unknown platforms.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.TrimSpace(s))
	for _, known := range Platforms {
		if p == known {
			return p, true
		}
	}
	return p, false
}

// Adapter decides which files are requested for a platform and where they land on disk.
type Adapter interface {
	// Platform returns the platform this adapter serves.
	Platform() Platform

	// AllowedExtensions returns the extensions to export, each starting with ".".
	// The order is the order in which files are fetched.
	AllowedExtensions() []string

	// Directory returns the sub-directory for a locale, relative to the export root.
	// An empty string means the export root itself.
	Directory(locale string, isDefault bool) string

	// DefaultFileName returns the base filename without extension.
	DefaultFileName() string

	// WriteLocale writes payload into dir and returns the written path.
	WriteLocale(fs afero.Fs, dir string, payload []byte, locale, extension string, isDefault bool) (string, error)
}

// Options carries the platform specific settings an adapter needs.
type Options struct {
	// Format is the Loco export format; "plist" switches iOS to InfoPlist.strings.
	Format string
	// CustomExtension is the file extension used by the custom platform.
	CustomExtension string
	// CustomFileName is the base filename used by the custom platform.
	CustomFileName string
}

// New returns the adapter for platform.
func New(platform Platform, opts Options) (Adapter, error) {
	switch platform {
	case PlatformAndroid:
		return Android{}, nil
	case PlatformIOS:
		return Cocoa{Format: opts.Format}, nil
	case PlatformFlutter:
		return Flutter{}, nil
	case PlatformXamarin:
		return Xamarin{}, nil
	case PlatformCustom:
		return Custom{Extension: opts.CustomExtension, FileName: opts.CustomFileName}, nil
	default:
		return nil, fmt.Errorf("unsupported platform '%s'", platform)
	}
}

// writeFile writes payload to dir/name, the naming rule shared by every adapter.
func writeFile(fs afero.Fs, dir, name string, payload []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(fs, path, payload, FilePerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// base implements the directory-discriminated write used by Android and iOS:
// every locale gets {dir}/{defaultFileName}{ext}.
type base struct{}

func (base) Directory(string, bool) string { return "" }

func (base) writeDefault(fs afero.Fs, dir, defaultFileName string, payload []byte, extension string) (string, error) {
	return writeFile(fs, dir, defaultFileName+extension, payload)
}
