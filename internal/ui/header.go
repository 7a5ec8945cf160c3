package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// renderHeader renders the status bar: link state, port@baud, pane counts,
// and the most recent link error if any.
func (m Model) renderHeader() string {
	var parts []string

	parts = append(parts, m.styles.Logo.Render("espmon"))

	link := m.snapshot.Link
	if link.Connected {
		parts = append(parts, m.styles.SuccessText.Render("● ON"))
	} else {
		parts = append(parts, m.styles.DangerText.Render("● OFF"))
	}

	port := m.portName
	if port == "" {
		parts = append(parts, m.styles.WarningText.Render("no port selected"))
	} else {
		parts = append(parts, m.styles.Text.Render(port)+
			m.styles.MutedText.Render("@"+strconv.Itoa(m.baud)))
	}

	parts = append(parts,
		m.styles.MutedText.Render("D:")+m.styles.Text.Render(strconv.Itoa(len(m.snapshot.Debug)))+
			m.styles.MutedText.Render(" L:")+m.styles.Text.Render(strconv.Itoa(len(m.snapshot.Device))))

	if link.Connected && !link.StartedAt.IsZero() {
		parts = append(parts, m.styles.MutedText.Render(formatUptime(time.Since(link.StartedAt))))
	}

	if link.LastError != nil {
		errText := truncate(fmt.Sprintf("%v", link.LastError), m.errWidth())
		parts = append(parts, m.styles.DangerText.Render("ERROR")+" "+m.styles.DangerText.Render(errText))
	}

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) errWidth() int {
	if m.width < 100 {
		return 40
	}
	return 80
}

// renderCommandBar renders key hints, the active search pattern, and the
// transient status message.
func (m Model) renderCommandBar() string {
	if m.search.editing {
		return m.styles.Footer.Width(m.width).Render(
			m.styles.AccentText.Render("/") + m.search.input.View())
	}

	type hint struct{ key, desc string }
	var hints []hint
	switch m.overlay {
	case overlayPorts:
		hints = []hint{
			{"j/k", "navigate"},
			{"enter", "select"},
			{"r", "refresh"},
			{"esc", "back"},
		}
	case overlayHelp:
		hints = []hint{{"esc", "back"}}
	default:
		startStop := "start"
		if m.opts.Controller.Running() {
			startStop = "stop"
		}
		hints = []hint{
			{"enter", startStop},
			{"p", "ports"},
			{"b", "baud"},
			{"s", "save"},
			{"c", "clear"},
			{"/", "search"},
			{"tab", "pane"},
			{"?", "help"},
			{"q", "quit"},
		}
	}

	segments := make([]string, 0, len(hints)+2)
	for _, h := range hints {
		segments = append(segments,
			m.styles.AccentText.Render(h.key)+m.styles.FaintText.Render(":")+m.styles.MutedText.Render(h.desc))
	}
	if m.search.query != "" && m.overlay == overlayNone {
		segments = append(segments, m.styles.AccentText.Render("/"+truncate(m.search.query, 18))+
			m.styles.MutedText.Render(m.search.matchLabel()))
	}
	if m.status != "" {
		segments = append(segments, m.styles.WarningText.Render(truncate(m.status, m.errWidth())))
	}

	return m.styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
