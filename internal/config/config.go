package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings espmon reads from its config file.
type Config struct {
	LogDir     string // where saved captures and the diagnostic log land
	Baud       int    // default baud rate for newly opened ports
	Timestamps bool   // prefix displayed and saved lines with [HH:MM:SS]
	HTMLExport bool   // mirror device captures as colorized HTML on save
}

const (
	defaultConfigPath = "~/.config/espmon/config.toml"
	defaultLogDir     = "~/.local/share/espmon/logs"
	defaultBaud       = 115200
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogDir:     mustExpand(defaultLogDir),
		Baud:       defaultBaud,
		Timestamps: true,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir     string `toml:"log_dir"`
		Baud       int    `toml:"baud"`
		Timestamps *bool  `toml:"timestamps"`
		HTMLExport bool   `toml:"html_export"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if raw.Baud > 0 {
		cfg.Baud = raw.Baud
	}
	if raw.Timestamps != nil {
		cfg.Timestamps = *raw.Timestamps
	}
	cfg.HTMLExport = raw.HTMLExport

	return cfg, nil
}

// DiagnosticLogPath returns the path of espmon's own diagnostic log file.
func (c Config) DiagnosticLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/espmon.log")
	}
	return filepath.Join(c.LogDir, "espmon.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
