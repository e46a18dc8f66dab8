package teaui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for an editor model.
type KeyMap struct {
	Commit key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Oldest key.Binding
	Newest key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard editor bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		Oldest: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "oldest"),
		),
		Newest: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("ctrl+end", "newest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
