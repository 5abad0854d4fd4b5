// Package watch observes the litdb database file for modification so
// long-running processes can drop stale caches.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Watcher invokes a callback whenever the watched file changes.
// SQLite rewrites the database file in place, so the parent directory
// is watched and events are filtered by base name. That also keeps
// the watch alive across atomic replace-by-rename updates.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	onChange func()

	closeOnce sync.Once
	done      chan struct{}
}

// New starts watching the file at path and calls onChange for every
// create, write, remove or rename event affecting it.
func New(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fw:       fw,
		path:     filepath.Clean(path),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()

	logger.Debug("watching %s for changes", w.path)
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return
	}

	logger.Debug("database changed (%s)", event.Op)
	w.onChange()
}

// Close stops the watcher and waits for its event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fw.Close()
		<-w.done
	})
	return err
}
