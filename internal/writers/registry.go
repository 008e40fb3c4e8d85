// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"teaudit/internal/audit"
)

// RecordWriters maps a table format to its handler (last registration wins).
var RecordWriters = map[string]func(w io.Writer, recs []audit.Record) error{}

// Register adds or replaces the handler for a format.
func Register(format string, fn func(io.Writer, []audit.Record) error) {
	RecordWriters[format] = fn
}

// Write dispatches recs to the handler registered for format.
func Write(format string, w io.Writer, recs []audit.Record) error {
	fn, ok := RecordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, recs)
}

// Ext returns the filename extension used for a format.
func Ext(format string) string { return "." + format }
