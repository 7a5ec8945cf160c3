package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartStop  key.Binding
	Ports      key.Binding
	Refresh    key.Binding
	Baud       key.Binding
	Clear      key.Binding
	Timestamps key.Binding
	Autoscroll key.Binding
	Save       key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	Focus      key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding

	// overlay navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartStop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/stop"),
		),
		Ports: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "ports"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh ports"),
		),
		Baud: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "baud"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Timestamps: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timestamps"),
		),
		Autoscroll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoscroll"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save logs"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev match"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("j/k", "navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/k", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}
