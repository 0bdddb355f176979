package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Recency    key.Binding
	Popularity key.Binding
	Name       key.Binding
	Retry      key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Recency, k.Popularity, k.Name, k.Retry, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Recency, k.Popularity, k.Name},
		{k.Retry, k.Quit},
	}
}

var defaultKeys = keyMap{
	Recency: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "sort by update"),
	),
	Popularity: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort by stars"),
	),
	Name: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "sort by name"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
