// Package main is the statekit demo: a line editor with undo/redo
// backed by a bounded history container, with live config reload.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dlane/statekit/history"
	"github.com/dlane/statekit/internal/config"
	"github.com/dlane/statekit/internal/log"
	"github.com/dlane/statekit/internal/watch"
	"github.com/dlane/statekit/teaui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	capacity    int
	showVersion bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to config file (.toml or .yaml)")
	flag.IntVar(&opts.capacity, "capacity", 0, "history capacity (overrides config)")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("statekit %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.capacity > 0 {
		cfg.History.Capacity = opts.capacity
	}

	logger, closeLog, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	h, err := newContainer(cfg.History, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	editor := teaui.New(h, teaui.WithPlaceholder("type, enter commits"))
	program := tea.NewProgram(appModel{editor: editor, logger: logger, cfg: cfg})

	if cfg.Reload.Enabled && opts.configPath != "" {
		watcher, err := newReloadWatcher(opts.configPath, cfg, program, logger)
		if err != nil {
			logger.Warn("config reload disabled: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	logger.Info("starting, capacity=%d", cfg.History.Capacity)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("exiting")
	return 0
}

// newLogger builds the demo logger from config. Without a log file
// (a TUI owns the terminal) output is discarded.
func newLogger(cfg config.LoggingConfig) (*log.Logger, func(), error) {
	level := log.ParseLevel(cfg.Level)

	if cfg.File == "" {
		return log.New(io.Discard, level), func() {}, nil
	}

	logger, closeFn, err := log.NewFile(cfg.File, level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closeFn() }, nil
}

// newContainer builds the history container and attaches the logging
// watcher that traces every state change.
func newContainer(cfg config.HistoryConfig, logger *log.Logger) (*history.History[string], error) {
	h, err := history.New(cfg.Initial, history.WithCapacity(cfg.Capacity))
	if err != nil {
		return nil, err
	}

	hl := logger.WithField("component", "history")
	h.Watch(func(s history.Snapshot[string]) {
		hl.Debug("cursor=%d len=%d current=%q", s.Cursor, s.Len(), s.Current)
	})

	return h, nil
}

// newReloadWatcher starts the config file watcher and pumps reloaded
// configs into the program.
func newReloadWatcher(path string, cfg config.Config, program *tea.Program, logger *log.Logger) (*watch.Watcher, error) {
	wl := logger.WithField("component", "watch")

	watcher, err := watch.New(path, cfg.Reload.Debounce.Std(), func() {
		fresh, err := config.Load(path)
		if err != nil {
			wl.Warn("reload failed: %v", err)
			return
		}
		wl.Info("config reloaded")
		program.Send(reloadMsg{cfg: fresh})
	})
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(); err != nil {
		return nil, err
	}
	return watcher, nil
}
