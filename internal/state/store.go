package state

import (
	"fmt"
	"sync"
	"time"
)

// Pane identifies one of the two output panes.
type Pane int

const (
	// PaneDebug receives plain lines without ANSI styling.
	PaneDebug Pane = iota
	// PaneDevice receives ANSI-styled lines from the device's structured logger.
	PaneDevice
)

func (p Pane) String() string {
	if p == PaneDevice {
		return "device"
	}
	return "debug"
}

// Line is one captured line of serial output.
type Line struct {
	Text string
	When time.Time
}

// Link describes the serial connection as last observed.
type Link struct {
	Connected bool
	Port      string
	Baud      int
	StartedAt time.Time
	LastError error
}

// Snapshot is the latest data available to the UI and the log saver.
type Snapshot struct {
	Debug  []Line
	Device []Line
	Link   Link
	Seq    uint64 // bumped on every mutation; cheap change detection
}

// maxPaneLines caps each pane's history; the oldest lines are dropped first.
const maxPaneLines = 5000

// Store coordinates concurrent access to the pane buffers and link status.
// The serial reader goroutine appends while the UI reads snapshots.
type Store struct {
	mu     sync.RWMutex
	debug  []Line
	device []Line
	link   Link
	seq    uint64
}

// Append adds one line to the given pane, timestamped now.
func (s *Store) Append(pane Pane, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := Line{Text: text, When: time.Now()}
	switch pane {
	case PaneDevice:
		s.device = appendCapped(s.device, line)
	default:
		s.debug = appendCapped(s.debug, line)
	}
	s.seq++
}

// SetLink replaces the recorded link status.
func (s *Store) SetLink(link Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = link
	s.seq++
}

// SetConnected flips the link flag, keeping port, baud and last error.
func (s *Store) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link.Connected = connected
	s.seq++
}

// SetError marks the link down while recording the failure. Port and baud
// are kept so the UI can show what was attempted.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link.Connected = false
	s.link.LastError = err
	s.seq++
}

// Clear empties both panes. Link status is untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = nil
	s.device = nil
	s.seq++
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Debug:  cloneLines(s.debug),
		Device: cloneLines(s.device),
		Link:   s.link,
		Seq:    s.seq,
	}
	if s.link.LastError != nil {
		snap.Link.LastError = fmt.Errorf("%w", s.link.LastError)
	}
	return snap
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]Line, len(lines))
	copy(dup, lines)
	return dup
}

func appendCapped(lines []Line, line Line) []Line {
	lines = append(lines, line)
	if len(lines) > maxPaneLines {
		// Reallocate rather than reslice so dropped lines can be collected.
		trimmed := make([]Line, maxPaneLines)
		copy(trimmed, lines[len(lines)-maxPaneLines:])
		return trimmed
	}
	return lines
}
