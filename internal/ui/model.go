package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"espmon/internal/logsave"
	"espmon/internal/prefs"
	"espmon/internal/serialport"
	"espmon/internal/state"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayPorts
	overlayHelp
)

const (
	refreshEvery  = 250 * time.Millisecond
	statusLinger  = 5 * time.Second
	chromeHeight  = 2 // header + command bar
	paneFrameRows = 3 // top border, title, bottom border
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model for the dual-pane monitor.
type Model struct {
	opts   Options
	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int
	ready  bool

	snapshot state.Snapshot
	seq      uint64

	debugView  viewport.Model
	deviceView viewport.Model
	focus      state.Pane

	portName string
	baud     int
	ports    []serialport.PortInfo
	portIdx  int

	autoscroll bool
	timestamps bool

	overlay overlayKind
	search  searchState

	status   string
	statusAt time.Time
}

func newModel(opts Options) Model {
	theme := GetTheme(opts.Prefs.Theme)
	m := Model{
		opts:       opts,
		keys:       defaultKeyMap(),
		theme:      theme,
		styles:     theme.Styles(),
		portName:   opts.Port,
		baud:       opts.Baud,
		ports:      opts.Ports,
		autoscroll: opts.Prefs.Autoscroll,
		timestamps: opts.Prefs.Timestamps,
		search:     newSearchState(),
	}
	if m.baud <= 0 {
		m.baud = serialport.DefaultBaud
	}
	m.syncPortIdx()
	return m
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refresh(true)
		return m, nil

	case tickMsg:
		m.refresh(false)
		if m.status != "" && time.Since(m.statusAt) > statusLinger {
			m.status = ""
		}
		return m, tick()

	case tea.KeyMsg:
		if m.search.editing {
			return m.handleSearchKey(msg)
		}
		if m.overlay != overlayNone {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartStop):
		m.toggleMonitoring()
		return m, nil

	case key.Matches(msg, m.keys.Ports):
		m.refreshPorts()
		m.overlay = overlayPorts
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.refreshPorts()
		return m, nil

	case key.Matches(msg, m.keys.Baud):
		m.baud = serialport.NextBaud(m.baud)
		if m.opts.Controller.Running() {
			m.setStatus("Baud changes apply on next start")
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.opts.Store.Clear()
		m.clearSearch()
		return m, nil

	case key.Matches(msg, m.keys.Timestamps):
		m.timestamps = !m.timestamps
		m.refresh(true)
		return m, nil

	case key.Matches(msg, m.keys.Autoscroll):
		m.autoscroll = !m.autoscroll
		if m.autoscroll {
			m.debugView.GotoBottom()
			m.deviceView.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.saveLogs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.startSearch()
		return m, nil

	case key.Matches(msg, m.keys.NextMatch):
		m.gotoMatch(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.gotoMatch(-1)
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.focus == state.PaneDebug {
			m.focus = state.PaneDevice
		} else {
			m.focus = state.PaneDebug
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil
	}

	// Everything else (arrows, pgup/pgdn) scrolls the focused pane.
	var cmd tea.Cmd
	if m.focus == state.PaneDevice {
		m.deviceView, cmd = m.deviceView.Update(msg)
	} else {
		m.debugView, cmd = m.debugView.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleMonitoring() {
	if m.opts.Controller.Running() {
		m.opts.Controller.Stop()
		m.setStatus("Monitoring stopped")
		return
	}
	if err := m.opts.Controller.Start(m.portName, m.baud); err != nil {
		m.setStatus(err.Error())
		return
	}
	m.setStatus("Monitoring " + m.portName)
}

func (m *Model) saveLogs() {
	res, err := logsave.Save(m.opts.Config.LogDir, m.opts.Store.Snapshot(), logsave.Options{
		Timestamps: m.timestamps,
		HTML:       m.opts.Config.HTMLExport,
	})
	if err != nil {
		m.opts.Logger.Error("save logs failed", "err", err)
		m.setStatus("Save failed: " + err.Error())
		return
	}
	m.opts.Logger.Info("logs saved", "debug", res.DebugPath, "device", res.DevicePath, "lines", res.Lines)
	m.setStatus(fmt.Sprintf("Saved %d lines to %s", res.Lines, truncateMiddle(m.opts.Config.LogDir, 40)))
}

func (m *Model) refreshPorts() {
	ports, err := serialport.List()
	if err != nil {
		m.opts.Logger.Warn("port enumeration failed", "err", err)
		m.setStatus("Port refresh failed: " + err.Error())
		return
	}
	m.ports = ports
	m.syncPortIdx()
}

// syncPortIdx keeps the picker selection on the chosen port when possible.
func (m *Model) syncPortIdx() {
	m.portIdx = 0
	for i, p := range m.ports {
		if p.Name == m.portName {
			m.portIdx = i
			return
		}
	}
	if m.portName == "" && len(m.ports) > 0 {
		m.portName = m.ports[0].Name
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{
		Theme:      m.theme.Name,
		Port:       m.portName,
		Baud:       m.baud,
		Autoscroll: m.autoscroll,
		Timestamps: m.timestamps,
	}
	if err := prefs.Save(m.opts.PrefsPath, p); err != nil {
		m.opts.Logger.Warn("save prefs failed", "err", err)
	}
}

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}
	var body string
	switch m.overlay {
	case overlayPorts:
		body = m.renderPortPicker()
	case overlayHelp:
		body = m.renderHelp()
	default:
		body = m.renderPanes()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderCommandBar(),
	)
}
