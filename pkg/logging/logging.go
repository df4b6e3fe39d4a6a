package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level represents a log level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the log output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var levels = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// Config holds logging configuration.
type Config struct {
	Level  Level
	Format Format

	// Output defaults to os.Stderr.
	Output io.Writer

	// NoColor disables ANSI colors in text output. Colors are also off when
	// Output is not a terminal.
	NoColor bool
}

// New creates a logger. Text output is rendered by tint, JSON output by slog itself.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level}))
	}
	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: time.Kitchen,
		NoColor:    cfg.NoColor || !isTerminal(out),
	}))
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LookupLevel maps debug, info, warn(ing) or error, in any case, to a Level.
// An empty string is info. ok is false for anything else, and the level is info.
func LookupLevel(s string) (level Level, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo, true
	}
	level, ok = levels[s]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

// LookupFormat maps text or json, in any case, to a Format.
// An empty string is text. ok is false for anything else, and the format is text.
func LookupFormat(s string) (format Format, ok bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, true
	case FormatText, "":
		return FormatText, true
	default:
		return FormatText, false
	}
}
