package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"espmon/internal/logline"
	"espmon/internal/serialport"
	"espmon/internal/state"
)

// portReader is the slice of serialport.Reader the monitor needs.
type portReader interface {
	Lines(ctx context.Context, onLine func(string), onErr func(error))
	Close()
	Name() string
	Baud() int
}

// Monitor owns the serial reader lifecycle: at most one open port and one
// background read goroutine at a time.
type Monitor struct {
	base  context.Context
	store *state.Store
	log   *log.Logger
	open  func(name string, baud int) (portReader, error)

	mu     sync.Mutex
	reader portReader
	cancel context.CancelFunc
}

// NewMonitor returns a stopped monitor writing into store.
func NewMonitor(ctx context.Context, store *state.Store, logger *log.Logger) *Monitor {
	return &Monitor{
		base:  ctx,
		store: store,
		log:   logger,
		open: func(name string, baud int) (portReader, error) {
			return serialport.Open(name, baud)
		},
	}
}

// Running reports whether a port is currently being monitored.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reader != nil
}

// Start opens the port and launches the background read loop. The open
// failure is both returned and recorded in the store so the header shows it.
func (m *Monitor) Start(port string, baud int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reader != nil {
		return fmt.Errorf("already monitoring %s", m.reader.Name())
	}
	if strings.TrimSpace(port) == "" {
		err := fmt.Errorf("no serial port selected")
		m.store.SetError(err)
		return err
	}

	reader, err := m.open(port, baud)
	if err != nil {
		err = fmt.Errorf("start monitoring: %w", err)
		m.store.SetError(err)
		m.log.Error("open failed", "port", port, "baud", baud, "err", err)
		return err
	}

	ctx, cancel := context.WithCancel(m.base)
	m.reader = reader
	m.cancel = cancel
	m.store.SetLink(state.Link{
		Connected: true,
		Port:      port,
		Baud:      baud,
		StartedAt: time.Now(),
	})
	m.log.Info("monitoring started", "port", port, "baud", baud)

	go m.readLoop(ctx, reader)
	return nil
}

// Stop closes the port and ends the read loop. Safe to call when stopped.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reader == nil {
		return
	}
	m.cancel()
	m.reader.Close()
	m.log.Info("monitoring stopped", "port", m.reader.Name(), "baud", m.reader.Baud())
	m.reader = nil
	m.cancel = nil
	m.store.SetConnected(false)
}

func (m *Monitor) readLoop(ctx context.Context, reader portReader) {
	reader.Lines(ctx, m.routeLine, func(err error) {
		m.log.Error("serial read failed", "port", reader.Name(), "baud", reader.Baud(), "err", err)
		m.store.Append(state.PaneDebug, fmt.Sprintf("Serial error: %v", err))
		m.store.SetError(err)
	})

	// If the loop ended on its own (read error, device gone) rather than via
	// Stop, release the port here.
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reader == reader {
		m.cancel()
		reader.Close()
		m.reader = nil
		m.cancel = nil
		m.store.SetConnected(false)
	}
}

// routeLine applies the pane routing policy: lines carrying ANSI styling go
// to the device pane, everything else to the debug pane.
func (m *Monitor) routeLine(line string) {
	pane := state.PaneDebug
	if logline.HasANSI(line) {
		pane = state.PaneDevice
	}
	m.store.Append(pane, line)
}
