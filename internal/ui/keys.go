package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the animation view.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeys returns the default key bindings.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func helpLine(k KeyMap) string {
	h := k.Quit.Help()
	return h.Key + " to " + h.Desc
}
