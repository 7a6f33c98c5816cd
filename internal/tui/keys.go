package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Launch   key.Binding
	Quit     key.Binding
	Theme    key.Binding
	SpinUp   key.Binding
	SpinDown key.Binding
	Export   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch tornado"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		SpinUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "spin up"),
		),
		SpinDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "spin down"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export bookmarks"),
		),
	}
}
