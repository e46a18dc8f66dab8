package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles controls the rendered appearance of a Model.
type Styles struct {
	Input     lipgloss.Style
	LogEntry  lipgloss.Style
	LogCursor lipgloss.Style
	Status    lipgloss.Style
	StatusOn  lipgloss.Style
	StatusOff lipgloss.Style
}

// DefaultStyles returns the standard appearance.
func DefaultStyles() Styles {
	return Styles{
		Input:     lipgloss.NewStyle().PaddingBottom(1),
		LogEntry:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		LogCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingTop(1),
		StatusOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusOff: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
	}
}

// View renders the input, the log with the cursor entry marked, and a
// status line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	snap := m.hist.Snapshot()
	for i, entry := range snap.Entries {
		style := m.styles.LogEntry
		marker := "  "
		if i == snap.Cursor {
			style = m.styles.LogCursor
			marker = "> "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d  %s", marker, i, entry)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Status.Render(m.statusLine(snap.Cursor, snap.Len())))
	return b.String()
}

func (m Model) statusLine(cursor, n int) string {
	undo := m.styles.StatusOff.Render("undo")
	if cursor > 0 {
		undo = m.styles.StatusOn.Render("undo")
	}
	redo := m.styles.StatusOff.Render("redo")
	if cursor < n-1 {
		redo = m.styles.StatusOn.Render("redo")
	}

	return fmt.Sprintf("%d/%d (cap %d)  %s  %s", cursor+1, n, m.hist.Capacity(), undo, redo)
}
