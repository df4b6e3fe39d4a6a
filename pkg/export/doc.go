// Package export drives an export run.
//
// For each configured locale, in order, and for each extension the platform adapter
// allows, Exporter fetches the file from Loco, creates the locale directory and lets the
// adapter write the payload. The first locale is the default locale.
//
// Work is strictly sequential. A fetch or write failure ends the run immediately; a
// missing translation file is never skipped silently.
package export
