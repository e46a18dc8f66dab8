// Package teaui binds a history container to a Bubble Tea program.
//
// Model is a ready-made line editor with undo/redo: typed text is
// committed on enter, ctrl+z / ctrl+y walk the log, and the view renders
// the log with the cursor entry highlighted. Like the bubbles widgets,
// Update returns the concrete Model, so embed it in a program's root
// model and delegate messages to it.
package teaui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dlane/statekit/history"
)

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithPlaceholder sets the input placeholder text.
func WithPlaceholder(s string) Option {
	return func(m *Model) {
		m.input.Placeholder = s
	}
}

// Model is a Bubble Tea line editor backed by a history container.
type Model struct {
	hist   *history.History[string]
	input  textinput.Model
	keys   KeyMap
	styles Styles
}

// New creates a model around an existing container. The input starts
// focused, showing the container's current value.
func New(h *history.History[string], opts ...Option) Model {
	input := textinput.New()
	input.SetValue(h.Current())
	input.Focus()

	m := Model{
		hist:   h,
		input:  input,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// History returns the underlying container.
func (m Model) History() *history.History[string] {
	return m.hist
}

// Value returns the text currently in the input, which may not be
// committed yet.
func (m Model) Value() string {
	return m.input.Value()
}

// Init returns the initial command for the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and other messages, returning the updated model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Commit):
			m.hist.Set(m.input.Value())
			return m, nil

		case key.Matches(msg, m.keys.Undo):
			m.input.SetValue(m.hist.Back())
			m.input.CursorEnd()
			return m, nil

		case key.Matches(msg, m.keys.Redo):
			m.input.SetValue(m.hist.Forward())
			m.input.CursorEnd()
			return m, nil

		case key.Matches(msg, m.keys.Oldest):
			m.input.SetValue(m.hist.GoTo(0))
			m.input.CursorEnd()
			return m, nil

		case key.Matches(msg, m.keys.Newest):
			m.input.SetValue(m.hist.GoTo(m.hist.Len() - 1))
			m.input.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SetContainer swaps the backing container, syncing the input to its
// current value. Used when the owner rebuilds the container, e.g. after
// a capacity change from a config reload.
func (m Model) SetContainer(h *history.History[string]) Model {
	m.hist = h
	m.input.SetValue(h.Current())
	m.input.CursorEnd()
	return m
}
