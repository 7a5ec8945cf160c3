package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger opens a file-backed diagnostic logger. The TUI owns the
// terminal, so logging to stderr would corrupt the display; when the log
// file cannot be opened the logger discards instead.
func newLogger(path string) *log.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(file, log.Options{ReportTimestamp: true})
}
