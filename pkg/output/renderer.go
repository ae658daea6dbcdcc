// Package output renders duplicate reports to the console, CSV or JSON.
// It is pure formatting over already-computed results.
package output

import (
	"io"

	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

// Format selects a report renderer.
type Format string

const (
	FormatConsole Format = "console"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
)

// Options tune rendering.
type Options struct {
	// NoColor strips console styling. CSV and JSON are always plain.
	NoColor bool
}

// Render writes the duplicate entries to w in the requested format.
func Render(w io.Writer, format Format, entries []types.DuplicateEntry, opts Options) error {
	switch format {
	case FormatConsole:
		return renderConsole(w, entries, opts.NoColor)
	case FormatCSV:
		return renderCSV(w, entries)
	case FormatJSON:
		return renderJSON(w, entries)
	default:
		return errors.Newf(errors.ErrReportFormat, "unknown output format %q", format)
	}
}
