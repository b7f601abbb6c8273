package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts for the explorer
type KeyMap struct {
	Dashboard key.Binding
	Sessions  key.Binding
	Search    key.Binding
	Projects  key.Binding
	Stats     key.Binding
	Plans     key.Binding
	Todos     key.Binding
	Open      key.Binding
	Back      key.Binding
	Refresh   key.Binding
	Export    key.Binding
	Options   key.Binding
	Quit      key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Dashboard: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dashboard"),
		),
		Sessions: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sessions"),
		),
		Search: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "search"),
		),
		Projects: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "projects"),
		),
		Stats: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "activity"),
		),
		Plans: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "plans"),
		),
		Todos: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "todos"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Options: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
