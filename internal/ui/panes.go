package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"espmon/internal/logline"
	"espmon/internal/state"
)

// layout resizes both viewports for the current window size.
func (m *Model) layout() {
	innerW := m.paneInnerWidth()
	innerH := m.paneInnerHeight()

	if m.debugView.Width == 0 && m.deviceView.Width == 0 {
		m.debugView = viewport.New(innerW, innerH)
		m.deviceView = viewport.New(innerW, innerH)
	} else {
		m.debugView.Width = innerW
		m.debugView.Height = innerH
		m.deviceView.Width = innerW
		m.deviceView.Height = innerH
	}
}

func (m Model) paneInnerWidth() int {
	w := m.width/2 - 2 // border columns
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) paneInnerHeight() int {
	h := m.height - chromeHeight - paneFrameRows
	if h < 3 {
		h = 3
	}
	return h
}

// refresh pulls a fresh snapshot from the store and rebuilds pane content
// when something changed. force rebuilds regardless (resize, toggles).
func (m *Model) refresh(force bool) {
	snap := m.opts.Store.Snapshot()
	if !force && snap.Seq == m.seq {
		return
	}
	m.snapshot = snap
	m.seq = snap.Seq

	m.debugView.SetContent(m.paneContent(snap.Debug))
	m.deviceView.SetContent(m.paneContent(snap.Device))
	if m.autoscroll {
		m.debugView.GotoBottom()
		m.deviceView.GotoBottom()
	}
}

func (m Model) paneContent(lines []state.Line) string {
	if len(lines) == 0 {
		return m.styles.FaintText.Render("waiting for output...")
	}
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, m.renderLine(line))
	}
	return strings.Join(rendered, "\n")
}

// renderLine colorizes one captured line: ANSI-styled lines keep their own
// colors via the renderer, plain lines get their classified severity color.
func (m Model) renderLine(line state.Line) string {
	var b strings.Builder
	if m.timestamps {
		b.WriteString(m.styles.MutedText.Render(line.When.Format("[15:04:05] ")))
	}
	if logline.HasANSI(line.Text) {
		for _, span := range logline.RenderANSI(line.Text) {
			b.WriteString(spanStyle(span.Style).Render(span.Text))
		}
	} else {
		color := logline.Classify(line.Text).Color()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(line.Text))
	}
	return b.String()
}

func spanStyle(s logline.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Color != "" {
		style = style.Foreground(lipgloss.Color(s.Color))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

// renderPanes draws the two bordered panes side by side.
func (m Model) renderPanes() string {
	debug := m.renderPane("Debug", m.debugView, m.focus == state.PaneDebug, len(m.snapshot.Debug))
	device := m.renderPane("Device", m.deviceView, m.focus == state.PaneDevice, len(m.snapshot.Device))
	return lipgloss.JoinHorizontal(lipgloss.Top, debug, device)
}

func (m Model) renderPane(title string, view viewport.Model, focused bool, count int) string {
	border := m.styles.Pane
	titleStyle := m.styles.MutedText.Bold(true)
	if focused {
		border = m.styles.PaneFocus
		titleStyle = m.styles.PaneTitle
	}

	heading := titleStyle.Render(title)
	if count > 0 {
		heading += m.styles.FaintText.Render(" · " + strconv.Itoa(count))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, heading, view.View())
	return border.Width(m.paneInnerWidth()).Render(content)
}
