package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.overlay = overlayNone
		return m, nil
	}

	if m.overlay != overlayPorts {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.portIdx > 0 {
			m.portIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.portIdx < len(m.ports)-1 {
			m.portIdx++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.refreshPorts()
	case key.Matches(msg, m.keys.Select):
		if len(m.ports) > 0 {
			m.portName = m.ports[m.portIdx].Name
			m.overlay = overlayNone
			m.setStatus("Port set to " + m.portName)
		}
	}
	return m, nil
}

// renderPortPicker draws the port selection list centered in the pane area.
func (m Model) renderPortPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render("Serial ports"))
	b.WriteString("\n\n")

	if len(m.ports) == 0 {
		b.WriteString(m.styles.MutedText.Render("no ports found, press r to rescan"))
	}
	for i, p := range m.ports {
		label := p.Label()
		switch {
		case i == m.portIdx:
			b.WriteString(m.styles.Selected.Render(" " + label + " "))
		case p.Name == m.portName:
			b.WriteString(m.styles.AccentText.Render(" " + label))
		default:
			b.WriteString(m.styles.Text.Render(" " + label))
		}
		if i < len(m.ports)-1 {
			b.WriteString("\n")
		}
	}

	return m.centerOverlay(m.styles.Overlay.Render(b.String()))
}

// renderHelp draws the key reference.
func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"enter", "start / stop monitoring"},
		{"p", "choose serial port"},
		{"r", "rescan serial ports"},
		{"b", "cycle baud rate"},
		{"tab", "switch pane focus"},
		{"c", "clear both panes"},
		{"t", "toggle timestamps"},
		{"a", "toggle autoscroll"},
		{"s", "save captures to log dir"},
		{"/", "search focused pane"},
		{"n / N", "next / previous match"},
		{"T", "cycle theme"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render("espmon keys"))
	b.WriteString("\n\n")
	for i, r := range rows {
		b.WriteString(m.styles.AccentText.Render(padRight(r.key, 8)))
		b.WriteString(m.styles.Text.Render(r.desc))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return m.centerOverlay(m.styles.Overlay.Render(b.String()))
}

func (m Model) centerOverlay(box string) string {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
