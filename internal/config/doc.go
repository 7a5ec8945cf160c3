// Package config loads espmon's configuration from
// ~/.config/espmon/config.toml, with sensible defaults when the file is
// missing. Runtime toggles the user changes from inside the TUI live in
// package prefs instead.
package config
