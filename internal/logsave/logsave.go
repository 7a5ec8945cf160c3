package logsave

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"espmon/internal/logline"
	"espmon/internal/state"
)

// Options control how a capture is written out.
type Options struct {
	Timestamps bool // prefix each saved line with [HH:MM:SS]
	HTML       bool // also write the device pane as colorized HTML
}

// Result reports what Save wrote.
type Result struct {
	DebugPath  string
	DevicePath string
	HTMLPath   string // empty unless Options.HTML
	Lines      int    // total lines across both panes
}

// Save writes both pane buffers to timestamped files in dir, creating it if
// needed. Empty panes still produce files so a save is always observable.
func Save(dir string, snap state.Snapshot, opts Options) (Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create log dir: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	res := Result{
		DebugPath:  filepath.Join(dir, "debug_"+stamp+".log"),
		DevicePath: filepath.Join(dir, "device_"+stamp+".log"),
		Lines:      len(snap.Debug) + len(snap.Device),
	}

	if err := writeLines(res.DebugPath, snap.Debug, opts.Timestamps); err != nil {
		return Result{}, err
	}
	if err := writeLines(res.DevicePath, snap.Device, opts.Timestamps); err != nil {
		return Result{}, err
	}

	if opts.HTML {
		res.HTMLPath = filepath.Join(dir, "device_"+stamp+".html")
		if err := writeHTML(res.HTMLPath, snap.Device, opts.Timestamps); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

func formatLine(line state.Line, timestamps bool) string {
	if timestamps {
		return "[" + line.When.Format("15:04:05") + "] " + line.Text
	}
	return line.Text
}

func writeLines(path string, lines []state.Line, timestamps bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(formatLine(line, timestamps) + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", filepath.Base(path), err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}

const (
	htmlHeader = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>espmon capture</title>
<style>body{background:#1c1c1c;color:#e0e0e0;font-family:monospace}</style>
</head><body><pre>
`
	htmlFooter = "</pre></body></html>\n"
)

// writeHTML mirrors the device pane as a dark page whose line coloring
// matches the on-screen rendering.
func writeHTML(path string, lines []state.Line, timestamps bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(htmlHeader); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	for _, line := range lines {
		if timestamps {
			stamp := "[" + line.When.Format("15:04:05") + "] "
			if _, err := w.WriteString(logline.EscapeMarkup(stamp)); err != nil {
				return fmt.Errorf("write %s: %w", filepath.Base(path), err)
			}
		}
		if _, err := w.WriteString(logline.HTMLLine(line.Text) + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", filepath.Base(path), err)
		}
	}
	if _, err := w.WriteString(htmlFooter); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}
