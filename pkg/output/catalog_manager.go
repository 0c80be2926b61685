package output

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// CatalogManager serves a catalog built from the embedded defaults and an optional
// user catalog file. The file is only read. When a reload fails the previous catalog
// stays active.
type CatalogManager struct {
	mu      sync.RWMutex
	catalog *Catalog
	base    *Catalog
	path    string

	watcher   *fsnotify.Watcher
	watcherMu sync.Mutex
}

// NewCatalogManager loads path over base. An empty path serves base unchanged.
// A nil base means the embedded defaults.
func NewCatalogManager(base *Catalog, path string) (*CatalogManager, error) {
	if base == nil {
		var err error
		base, err = DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load default catalog: %w", err)
		}
	}

	cm := &CatalogManager{base: base, path: path, catalog: base}
	if path == "" {
		return cm, nil
	}
	if err := cm.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load initial catalog: %w", err)
	}
	return cm, nil
}

// Catalog returns the active catalog
func (cm *CatalogManager) Catalog() *Catalog {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.catalog
}

// Reload re-reads the user catalog file and applies it if it parses and validates
func (cm *CatalogManager) Reload() error {
	if cm.path == "" {
		return nil
	}

	user, err := LoadCatalogFile(cm.path)
	if err != nil {
		return err
	}
	merged, err := cm.base.Merge(user)
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	cm.mu.Lock()
	cm.catalog = merged
	cm.mu.Unlock()

	slog.Info("Format catalog reloaded", "path", cm.path, "sets", len(merged.Names()))
	return nil
}

// Watch reloads the catalog whenever the file changes. It blocks until ctx is cancelled
// and releases the watcher on return, so it can be started again.
func (cm *CatalogManager) Watch(ctx context.Context) error {
	if cm.path == "" {
		return fmt.Errorf("no catalog file to watch")
	}

	cm.watcherMu.Lock()
	if cm.watcher != nil {
		cm.watcherMu.Unlock()
		return fmt.Errorf("catalog watcher is already running")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cm.watcherMu.Unlock()
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	cm.watcher = watcher
	cm.watcherMu.Unlock()
	defer cm.stopWatcher(watcher)

	if err := watcher.Add(cm.path); err != nil {
		return fmt.Errorf("failed to watch catalog file %s: %w", cm.path, err)
	}

	slog.Info("Watching format catalog", "path", cm.path)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping format catalog watcher")
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := cm.Reload(); err != nil {
					slog.Error("Failed to reload format catalog", "path", cm.path, "error", err)
				}
			}
			// editors and atomic writers replace the file, which drops the watch
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				_ = watcher.Add(cm.path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			slog.Error("Format catalog watcher error", "error", err)
		}
	}
}

// stopWatcher closes w unless Close already has
func (cm *CatalogManager) stopWatcher(w *fsnotify.Watcher) {
	cm.watcherMu.Lock()
	defer cm.watcherMu.Unlock()

	if cm.watcher != w {
		return
	}
	if err := w.Close(); err != nil {
		slog.Warn("Failed to close format catalog watcher", "error", err)
	}
	cm.watcher = nil
}

// Close stops the file watcher, if one is running
func (cm *CatalogManager) Close() error {
	cm.watcherMu.Lock()
	defer cm.watcherMu.Unlock()

	if cm.watcher != nil {
		if err := cm.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
		cm.watcher = nil
	}
	return nil
}
