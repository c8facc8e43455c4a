// Package tui implements the interactive palette preview.
package tui

import "github.com/charmbracelet/bubbles/key"

// keymap defines the keyboard interactions available in the preview.
type keymap struct {
	regenerate key.Binding
	write      key.Binding
	quit       key.Binding
	help       key.Binding
}

func newKeymap() keymap {
	return keymap{
		regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		write: key.NewBinding(
			key.WithKeys("enter", "w"),
			key.WithHelp("enter", "write profile"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.regenerate, k.write, k.quit, k.help}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.regenerate, k.write}, {k.quit, k.help}}
}
