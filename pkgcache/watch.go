package pkgcache

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type manifestWatcher struct {
	fsw *fsnotify.Watcher
}

func (w *manifestWatcher) addRoot(root string) {
	if err := w.fsw.Add(root); err != nil {
		slog.Debug("failed to watch package root", "root", root, "error", err)
	}
}

// Watch invalidates cached packages when their package.json changes on disk.
// It blocks until ctx is cancelled. Every package root discovered before or
// after the call is watched; a write, create, or remove of a manifest drops
// the owning package from the cache.
func (c *Cache) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create manifest watcher: %w", err)
	}
	defer fsw.Close()

	watcher := &manifestWatcher{fsw: fsw}
	watcher.addRoot(c.appRoot)

	c.mu.Lock()
	c.watcher = watcher
	for root := range c.packages {
		watcher.addRoot(root)
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.watcher = nil
		c.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != manifestFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			c.Invalidate(filepath.Dir(event.Name))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Debug("manifest watcher error", "error", err)
		}
	}
}
