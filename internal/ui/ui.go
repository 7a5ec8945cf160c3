package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"espmon/internal/config"
	"espmon/internal/prefs"
	"espmon/internal/serialport"
	"espmon/internal/state"
)

// Controller starts and stops serial monitoring on behalf of the UI.
type Controller interface {
	Start(port string, baud int) error
	Stop()
	Running() bool
}

// Options configure the UI runtime.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Controller Controller
	Config     config.Config
	Prefs      prefs.Prefs
	PrefsPath  string
	Ports      []serialport.PortInfo
	Port       string // preselected port (may be empty)
	Baud       int
	Logger     *log.Logger
}

// Run blocks until the user quits or the context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a controller")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prog := tea.NewProgram(newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := prog.Run(); err != nil {
		// Context cancellation (SIGINT/SIGTERM) is a normal shutdown.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
