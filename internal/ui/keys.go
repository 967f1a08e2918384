package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the overlay's keyboard bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "close overlay"),
		),
	}
}
