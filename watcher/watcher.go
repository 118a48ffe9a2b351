// Package watcher watches a downloaded documentation directory and emits
// debounced change batches, so the index block in the host document can be
// kept current while docs are edited or re-downloaded.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher provides recursive file system watching with debouncing over one
// documentation directory.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	debouncer  *Debouncer
	extensions map[string]bool
	rootDir    string
	logger     *slog.Logger
}

// New creates a recursive watcher on rootDir. Only events for files with one
// of the given extensions (case-insensitive) are reported; directory events
// are used solely to keep the watch set current.
func New(rootDir string, extensions []string, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extensionSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extensionSet[strings.ToLower(ext)] = true
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		debouncer:  NewDebouncer(250 * time.Millisecond),
		extensions: extensionSet,
		rootDir:    rootDir,
		logger:     logger,
	}

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries that can't be read
		}
		if !d.IsDir() {
			return nil
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Events returns the channel that receives debounced change batches.
func (w *Watcher) Events() <-chan []Change {
	return w.debouncer.Output()
}

// Start begins listening for file system events. Call this in a goroutine;
// it runs until the watcher is closed.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent converts one fsnotify event into a debounced change.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// A freshly created directory must be watched too.
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if err := w.fsWatcher.Add(path); err != nil {
				w.logger.Warn("failed to watch new directory", "path", path, "error", err)
			}
			return
		}
	}

	if !w.extensions[strings.ToLower(filepath.Ext(path))] {
		return
	}

	removed := event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
	if !removed && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	w.debouncer.Add(path, removed)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
