// Package logging provides structured logging configuration for simpleloco.
//
// This package wraps log/slog. Text output goes through tint for readable,
// colored terminal lines; JSON output is meant for CI log collectors.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("exported file", "path", "values-fr/strings.xml")
//	logger.Warn("URL failed", "url", u)
//
// # Integration
//
// Components accept a *slog.Logger in their constructor or via an option.
// If no logger is provided, they use logging.Nop().
package logging
