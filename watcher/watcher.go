// Package watcher re-runs a schema build when the source tree changes,
// one build at a time.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a source tree and re-runs a build on qualifying
// changes. Rebuilds are serialized: a build runs to completion before the
// next is considered, and events arriving while a build is in flight
// coalesce into exactly one subsequent run. A failed rebuild is logged and
// watching continues.
type Watcher struct {
	// Root is the directory to observe, recursively
	Root string
	// IsSource filters events; only paths it accepts trigger a rebuild.
	// The output file and non-schema files must not pass this filter, or
	// builds would re-trigger themselves.
	IsSource func(path string) bool
	// Rebuild runs one full build pass
	Rebuild func() error
	// Logger receives rebuild failures and watch diagnostics; defaults to
	// slog.Default()
	Logger *slog.Logger
}

// New creates a Watcher over root.
func New(root string, isSource func(string) bool, rebuild func() error) *Watcher {
	return &Watcher{
		Root:     root,
		IsSource: isSource,
		Rebuild:  rebuild,
		Logger:   slog.Default(),
	}
}

// Watch blocks until ctx is done, rebuilding on source-tree changes.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := addDirs(fsw, w.Root); err != nil {
		return err
	}

	trigger := make(chan struct{}, 1)
	go w.pump(ctx, fsw.Events, fsw.Errors, func(path string) error { return addDirs(fsw, path) }, trigger)

	w.rebuildLoop(ctx, trigger)
	return nil
}

// pump forwards qualifying file-system events into the trigger channel. The
// channel holds one slot: a full slot means a rebuild is already due, so
// further events coalesce into it.
func (w *Watcher) pump(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, watchDir func(string) error, trigger chan<- struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			w.handleEvent(event, watchDir, trigger)
		case err, ok := <-errs:
			if !ok {
				return
			}
			w.Logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, watchDir func(string) error, trigger chan<- struct{}) {
	// Directories created after startup need their own watches.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watchDir(event.Name); err != nil {
				w.Logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	changed := event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
	if !changed {
		return
	}
	if w.IsSource != nil && !w.IsSource(event.Name) {
		return
	}

	select {
	case trigger <- struct{}{}:
	default:
	}
}

// rebuildLoop serializes rebuilds: one at a time, in trigger order. There
// is no cancellation of an in-flight build; it runs to completion before
// the next trigger is considered.
func (w *Watcher) rebuildLoop(ctx context.Context, trigger <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-trigger:
			if err := w.Rebuild(); err != nil {
				w.Logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

// addDirs registers root and every directory under it with the watcher.
func addDirs(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watcher: cannot watch %s: %w", path, err)
		}
		return nil
	})
}
