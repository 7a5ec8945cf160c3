package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"espmon/internal/state"
)

// searchState tracks a case-insensitive substring search over the focused
// pane's captured lines.
type searchState struct {
	input   textinput.Model
	editing bool
	query   string
	matches []int // line indices in the searched pane
	idx     int
	pane    state.Pane
}

func newSearchState() searchState {
	input := textinput.New()
	input.Placeholder = "search..."
	input.CharLimit = 80
	input.Width = 30
	return searchState{input: input}
}

func (s searchState) matchLabel() string {
	if len(s.matches) == 0 {
		return " no matches"
	}
	return " " + strconv.Itoa(s.idx+1) + "/" + strconv.Itoa(len(s.matches))
}

func (m *Model) startSearch() {
	m.search.editing = true
	m.search.input.SetValue(m.search.query)
	m.search.input.Focus()
}

func (m *Model) clearSearch() {
	m.search.editing = false
	m.search.query = ""
	m.search.matches = nil
	m.search.idx = 0
	m.search.input.Blur()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.editing = false
		m.search.input.Blur()
		m.performSearch()
		return m, nil
	case tea.KeyEsc:
		m.clearSearch()
		return m, nil
	case tea.KeyCtrlC:
		m.savePrefs()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// performSearch scans the focused pane and jumps to the first match.
func (m *Model) performSearch() {
	m.search.query = strings.TrimSpace(m.search.input.Value())
	m.search.matches = nil
	m.search.idx = 0
	m.search.pane = m.focus
	if m.search.query == "" {
		return
	}

	lines := m.snapshot.Debug
	if m.focus == state.PaneDevice {
		lines = m.snapshot.Device
	}
	m.search.matches = findMatches(lines, m.search.query)
	if len(m.search.matches) == 0 {
		m.setStatus("No matches for " + m.search.query)
		return
	}
	m.jumpToMatch()
}

func findMatches(lines []state.Line, query string) []int {
	needle := strings.ToLower(query)
	var matches []int
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line.Text), needle) {
			matches = append(matches, i)
		}
	}
	return matches
}

// gotoMatch advances through the match list in either direction.
func (m *Model) gotoMatch(delta int) {
	if len(m.search.matches) == 0 {
		return
	}
	m.search.idx = (m.search.idx + delta + len(m.search.matches)) % len(m.search.matches)
	m.jumpToMatch()
}

// jumpToMatch scrolls the searched pane so the current match is visible.
// Autoscroll would immediately re-pin to the bottom, so it is released.
func (m *Model) jumpToMatch() {
	line := m.search.matches[m.search.idx]
	m.autoscroll = false

	offset := line - m.paneInnerHeight()/2
	if offset < 0 {
		offset = 0
	}
	if m.search.pane == state.PaneDevice {
		m.deviceView.SetYOffset(offset)
	} else {
		m.debugView.SetYOffset(offset)
	}
}
