// internal/writers/files.go
package writers

import (
	"os"
	"path/filepath"
	"time"

	"teaudit/internal/audit"
)

// WriteRecordsFile writes recs to path in the given format, creating parent
// directories as needed.
func WriteRecordsFile(path, format string, recs []audit.Record) error {
	return writeFile(path, func(fh *os.File) error {
		return Write(format, fh, recs)
	})
}

// WriteSummaryFile writes the digest to path.
func WriteSummaryFile(path string, recs []audit.Record, profile string, generated time.Time) error {
	return writeFile(path, func(fh *os.File) error {
		return WriteSummary(fh, recs, profile, generated)
	})
}

func writeFile(path string, fill func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
