package logsave

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"espmon/internal/state"
)

func sampleSnapshot() state.Snapshot {
	when := time.Date(2026, 8, 28, 10, 30, 5, 0, time.Local)
	return state.Snapshot{
		Debug: []state.Line{
			{Text: "booting", When: when},
			{Text: "this is a fatal crash", When: when.Add(time.Second)},
		},
		Device: []state.Line{
			{Text: "\x1b[31mE (99) wifi: failed\x1b[0m", When: when},
		},
	}
}

func TestSaveWritesBothPanes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	res, err := Save(dir, sampleSnapshot(), Options{Timestamps: true})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if res.Lines != 3 {
		t.Fatalf("Lines = %d, want 3", res.Lines)
	}
	if res.HTMLPath != "" {
		t.Fatalf("HTMLPath = %q, want empty without Options.HTML", res.HTMLPath)
	}

	debug, err := os.ReadFile(res.DebugPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := "[10:30:05] booting\n[10:30:06] this is a fatal crash\n"; string(debug) != want {
		t.Fatalf("debug file = %q, want %q", debug, want)
	}

	device, err := os.ReadFile(res.DevicePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// Raw lines are saved as captured, ANSI escapes included.
	if want := "[10:30:05] \x1b[31mE (99) wifi: failed\x1b[0m\n"; string(device) != want {
		t.Fatalf("device file = %q, want %q", device, want)
	}
}

func TestSaveWithoutTimestamps(t *testing.T) {
	res, err := Save(t.TempDir(), sampleSnapshot(), Options{})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	debug, err := os.ReadFile(res.DebugPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := "booting\nthis is a fatal crash\n"; string(debug) != want {
		t.Fatalf("debug file = %q, want %q", debug, want)
	}
}

func TestSaveEmptySnapshotStillProducesFiles(t *testing.T) {
	res, err := Save(t.TempDir(), state.Snapshot{}, Options{})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	for _, path := range []string{res.DebugPath, res.DevicePath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat(%s): %v", path, err)
		}
		if info.Size() != 0 {
			t.Fatalf("%s has %d bytes, want empty", path, info.Size())
		}
	}
}

func TestSaveHTMLExport(t *testing.T) {
	res, err := Save(t.TempDir(), sampleSnapshot(), Options{HTML: true})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if res.HTMLPath == "" {
		t.Fatal("HTMLPath empty with Options.HTML set")
	}
	html, err := os.ReadFile(res.HTMLPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	body := string(html)
	if !strings.Contains(body, `<span style="color:#ff4d4d">E (99) wifi: failed</span>`) {
		t.Fatalf("html missing styled span: %q", body)
	}
	if strings.Contains(body, "\x1b[") {
		t.Fatal("html still contains raw ANSI escapes")
	}
	if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.HasSuffix(body, "</html>\n") {
		t.Fatalf("html not well formed: %q", body)
	}
}
