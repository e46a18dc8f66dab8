package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dlane/statekit/history"
	"github.com/dlane/statekit/internal/config"
	"github.com/dlane/statekit/internal/log"
	"github.com/dlane/statekit/teaui"
)

// reloadMsg carries a freshly loaded config into the program.
type reloadMsg struct {
	cfg config.Config
}

// appModel is the root Bubble Tea model: the editor plus config
// reload handling.
type appModel struct {
	editor teaui.Model
	logger *log.Logger
	cfg    config.Config
}

// Init implements tea.Model.
func (m appModel) Init() tea.Cmd {
	return m.editor.Init()
}

// Update implements tea.Model.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reload, ok := msg.(reloadMsg); ok {
		return m.applyReload(reload.cfg), nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m appModel) View() string {
	return m.editor.View() + "\n\nenter commit · ctrl+z undo · ctrl+y redo · ctrl+c quit\n"
}

// applyReload applies a new config. The log level changes in place;
// a capacity change rebuilds the container around the current value,
// since capacity is fixed at construction.
func (m appModel) applyReload(cfg config.Config) appModel {
	m.logger.SetLevel(log.ParseLevel(cfg.Logging.Level))

	if cfg.History.Capacity != m.editor.History().Capacity() {
		h, err := history.New(
			m.editor.History().Current(),
			history.WithCapacity(cfg.History.Capacity),
		)
		if err != nil {
			m.logger.Warn("ignoring capacity %d: %v", cfg.History.Capacity, err)
		} else {
			hl := m.logger.WithField("component", "history")
			h.Watch(func(s history.Snapshot[string]) {
				hl.Debug("cursor=%d len=%d current=%q", s.Cursor, s.Len(), s.Current)
			})
			m.editor = m.editor.SetContainer(h)
			m.logger.Info("capacity changed to %d, history reset", cfg.History.Capacity)
		}
	}

	m.cfg = cfg
	return m
}
