// Package prefs handles espmon user preferences persistence.
// Preferences are stored in ~/.config/espmon/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the toggles and selections remembered between sessions.
type Prefs struct {
	Theme      string `toml:"theme"`
	Port       string `toml:"port"`
	Baud       int    `toml:"baud"`
	Autoscroll bool   `toml:"autoscroll"`
	Timestamps bool   `toml:"timestamps"`
}

const (
	defaultPrefsPath = "~/.config/espmon/prefs.toml"
	defaultTheme     = "Dracula"
)

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, Autoscroll: true, Timestamps: true}
}

// Load reads preferences from the given path. Any failure degrades to
// defaults; a broken prefs file must never keep the monitor from starting.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return defaults()
	}

	prefs := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs
		}
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
