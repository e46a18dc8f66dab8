// Package watch reloads the demo configuration when its file changes.
//
// Editors typically replace a file on save rather than writing it in
// place, so the watcher monitors the file's directory and filters events
// down to the configured path. Bursts of events are coalesced with a
// debouncer before the reload callback fires.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dlane/statekit/debounce"
)

// ErrAlreadyStarted is returned by Start on a running watcher.
var ErrAlreadyStarted = errors.New("watch: already started")

// Handler is called after the watched file has changed and stayed
// quiet for the debounce interval.
type Handler func()

// Watcher watches a single file for changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	handler  Handler
	interval time.Duration

	fsw       *fsnotify.Watcher
	debouncer *debounce.Debouncer

	started bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher for path. The handler runs once the file has
// been quiet for the debounce interval after a change.
func New(path string, interval time.Duration, handler Handler) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolving %s: %w", path, err)
	}

	return &Watcher{
		path:     absPath,
		handler:  handler,
		interval: interval,
	}, nil
}

// Start begins watching. It fails if the file's directory cannot be
// watched.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	// Watch the directory: editors replace files on save, and a watch
	// on the old inode would go stale.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch: watching %s: %w", filepath.Dir(w.path), err)
	}

	w.fsw = fsw
	w.debouncer = debounce.New(w.interval, w.fire)
	w.done = make(chan struct{})
	w.started = true

	w.wg.Add(1)
	go w.loop()

	return nil
}

// Stop stops watching. Pending debounced reloads are dropped.
// Stop is idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.started = false
	close(w.done)
	fsw := w.fsw
	deb := w.debouncer
	w.mu.Unlock()

	_ = fsw.Close()
	deb.Stop()
	w.wg.Wait()
}

// Path returns the absolute watched path.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient here; the next successful
			// event still triggers a reload.
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}
	w.debouncer.Trigger()
}

func (w *Watcher) fire() {
	if w.handler != nil {
		w.handler()
	}
}
