package app

import (
	"context"
	"fmt"

	"espmon/internal/config"
	"espmon/internal/prefs"
	"espmon/internal/serialport"
	"espmon/internal/state"
	"espmon/internal/ui"
)

// Options configure the espmon application.
type Options struct {
	ConfigPath string // empty uses ~/.config/espmon/config.toml
	PrefsPath  string // empty uses ~/.config/espmon/prefs.toml
	Port       string // overrides the remembered port
	Baud       int    // overrides the remembered baud rate
}

// Run boots the espmon TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	logger := newLogger(cfg.DiagnosticLogPath())

	port := userPrefs.Port
	if opts.Port != "" {
		port = opts.Port
	}
	baud := cfg.Baud
	if userPrefs.Baud > 0 {
		baud = userPrefs.Baud
	}
	if opts.Baud > 0 {
		baud = opts.Baud
	}
	if baud <= 0 {
		baud = serialport.DefaultBaud
	}

	ports, err := serialport.List()
	if err != nil {
		// Not fatal: the picker can retry, and --port still works.
		logger.Warn("port enumeration failed", "err", err)
	}

	store := &state.Store{}
	monitor := NewMonitor(ctx, store, logger)
	defer monitor.Stop()

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Controller: monitor,
		Config:     cfg,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Ports:      ports,
		Port:       port,
		Baud:       baud,
		Logger:     logger,
	}
	return ui.Run(uiOpts)
}
