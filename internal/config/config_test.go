package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.Baud != defaultBaud {
		t.Fatalf("Baud = %d, want %d", cfg.Baud, defaultBaud)
	}
	if !cfg.Timestamps {
		t.Fatal("Timestamps should default to true")
	}
	if cfg.HTMLExport {
		t.Fatal("HTMLExport should default to false")
	}
}

func TestLoadParsesAndExpandsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_dir = "  ~/captures  "
baud = 921600
timestamps = false
html_export = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "captures"); cfg.LogDir != want {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, want)
	}
	if cfg.Baud != 921600 {
		t.Fatalf("Baud = %d, want 921600", cfg.Baud)
	}
	if cfg.Timestamps {
		t.Fatal("Timestamps = true, want false")
	}
	if !cfg.HTMLExport {
		t.Fatal("HTMLExport = false, want true")
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("baud = not-a-number"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestDiagnosticLogPath(t *testing.T) {
	cfg := Config{LogDir: "/var/log/espmon"}
	if got := cfg.DiagnosticLogPath(); got != filepath.Join("/var/log/espmon", "espmon.log") {
		t.Fatalf("DiagnosticLogPath = %q", got)
	}
}
