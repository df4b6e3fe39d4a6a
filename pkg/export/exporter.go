package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/simpleloco/simpleloco/pkg/adapter"
	"github.com/simpleloco/simpleloco/pkg/config"
	"github.com/simpleloco/simpleloco/pkg/logging"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

// Fetcher downloads one export file. *loco.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, locale, extension string, params loco.Params) ([]byte, error)
}

// File describes one written export file.
type File struct {
	Locale    string `json:"locale"`
	Extension string `json:"extension"`
	Path      string `json:"path"`
	Size      int    `json:"size"`
}

// Result summarizes an export run.
type Result struct {
	Files []File `json:"files"`
}

// Exporter runs an export: every locale, every allowed extension, one file each.
type Exporter struct {
	fetcher Fetcher
	fs      afero.Fs
	logger  *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithFs sets the filesystem files are written to. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Exporter) {
		e.fs = fs
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Exporter that downloads through fetcher.
func New(fetcher Fetcher, opts ...Option) *Exporter {
	e := &Exporter{
		fetcher: fetcher,
		fs:      afero.NewOsFs(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run exports every configured locale.
//
// Locales are processed in order and the first one is the default locale. The run stops
// at the first file that cannot be fetched or written; files written before that stay on
// disk.
func (e *Exporter) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := e.fs.MkdirAll(cfg.Directory(), adapter.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", cfg.Directory(), err)
	}

	a := cfg.Adapter()
	params := cfg.ExportParams()
	result := &Result{}

	for i, locale := range cfg.Locales() {
		isDefault := i == 0

		for _, ext := range a.AllowedExtensions() {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			payload, err := e.fetcher.Fetch(ctx, locale, ext, params)
			if err != nil {
				return result, fmt.Errorf("could not export locale %s with extension %s: %w", locale, ext, err)
			}

			dir := filepath.Join(cfg.Directory(), a.Directory(locale, isDefault))
			if err := e.fs.MkdirAll(dir, adapter.DirPerm); err != nil {
				return result, fmt.Errorf("failed to create directory %s: %w", dir, err)
			}

			path, err := a.WriteLocale(e.fs, dir, payload, locale, ext, isDefault)
			if err != nil {
				return result, fmt.Errorf("could not write locale %s with extension %s: %w", locale, ext, err)
			}

			e.logger.Debug("exported file", "locale", locale, "extension", ext, "path", path, "bytes", len(payload))
			result.Files = append(result.Files, File{
				Locale:    locale,
				Extension: ext,
				Path:      path,
				Size:      len(payload),
			})
		}
	}

	e.logger.Info("export finished",
		"platform", cfg.Platform(),
		"locales", len(cfg.Locales()),
		"files", len(result.Files),
	)
	return result, nil
}
