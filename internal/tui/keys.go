package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Iron-Ham/showroom/internal/tui/filter"
)

// KeyMap is the full set of browse bindings. It implements help.KeyMap.
type KeyMap struct {
	Picker filter.KeyMap
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Picker: filter.DefaultKeyMap(),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Picker.Prev, k.Picker.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Picker.Prev, k.Picker.Next, k.Picker.Clear},
		{k.Help, k.Quit},
	}
}
