package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlane/statekit/history"
)

func newTestModel(t *testing.T, initial string, opts ...history.Option) Model {
	t.Helper()
	h, err := history.New(initial, opts...)
	require.NoError(t, err)
	return New(h)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewSyncsInputToCurrent(t *testing.T) {
	m := newTestModel(t, "hello")
	assert.Equal(t, "hello", m.Value())
}

func TestCommitOnEnter(t *testing.T) {
	m := newTestModel(t, "")
	m = typeText(m, "abc")
	m, _ = m.Update(keyMsg("enter"))

	assert.Equal(t, []string{"", "abc"}, m.History().Entries())
	assert.Equal(t, 1, m.History().Index())
}

func TestUndoRedoKeys(t *testing.T) {
	m := newTestModel(t, "one")
	m = typeText(m, " two")
	m, _ = m.Update(keyMsg("enter")) // commits "one two"

	m, _ = m.Update(keyMsg("ctrl+z"))
	assert.Equal(t, "one", m.Value())
	assert.Equal(t, "one", m.History().Current())

	m, _ = m.Update(keyMsg("ctrl+y"))
	assert.Equal(t, "one two", m.Value())
}

func TestUndoAtOldestKeepsInput(t *testing.T) {
	m := newTestModel(t, "only")

	m, _ = m.Update(keyMsg("ctrl+z"))

	assert.Equal(t, "only", m.Value())
	assert.Equal(t, 0, m.History().Index())
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, "")
	_, cmd := m.Update(keyMsg("ctrl+c"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSetContainer(t *testing.T) {
	m := newTestModel(t, "old")

	h, err := history.New("new", history.WithCapacity(5))
	require.NoError(t, err)
	m = m.SetContainer(h)

	assert.Equal(t, "new", m.Value())
	assert.Equal(t, 5, m.History().Capacity())
}

func TestViewShowsLogAndStatus(t *testing.T) {
	m := newTestModel(t, "first")
	m = typeText(m, " second")
	m, _ = m.Update(keyMsg("enter"))

	view := m.View()
	assert.True(t, strings.Contains(view, "first"))
	assert.True(t, strings.Contains(view, "first second"))
	assert.True(t, strings.Contains(view, "2/2"))
}
