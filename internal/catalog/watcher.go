package catalog

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ivtr7/dtsite/internal/metrics"
)

// Watcher reloads the catalog file into a Store whenever it changes on disk.
// Editors and deploy scripts tend to replace the file rather than write in
// place, so the watch is on the parent directory and events are filtered by
// name.
type Watcher struct {
	store   *Store
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewWatcher(store *Store, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{store: store, path: path, watcher: fw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("catalog: watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	videos, err := LoadFile(w.path)
	if err != nil {
		// A half-written file shows up as a decode error; keep the
		// previous catalog and wait for the next event.
		slog.Error("catalog: reload failed, keeping previous catalog", "path", w.path, "error", err)
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	w.store.Replace(videos)
	slog.Info("catalog: reloaded", "path", w.path, "videos", len(videos))
	metrics.CatalogReloads.WithLabelValues("ok").Inc()
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
