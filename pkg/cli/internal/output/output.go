// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Printer writes user-facing notices. Progress and results go to out,
// warnings to errOut.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	success *color.Color
	warn    *color.Color
}

// New creates a Printer. noColor disables ANSI colors.
func New(out, errOut io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}
	if noColor {
		p.success.DisableColor()
		p.warn.DisableColor()
	}
	return p
}

// Message prints a plain line.
func (p *Printer) Message(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a line in green.
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a warning message to the error writer.
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.errOut, "Warning: "+format+"\n", args...)
}

// JSON writes indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table creates an aligned table writer for w.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
