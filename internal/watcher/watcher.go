package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jasperlabs/caption-gen/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start monitors the drop directory for new URL-list files. Files are
// handled strictly one at a time: a batch runs to completion before the
// next dropped file is picked up.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for URL-list files in %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isURLListFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-list file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New URL list detected: %s", event.Name)

			// Small delay so the file is fully written before reading
			time.Sleep(500 * time.Millisecond)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isURLListFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".urls":
		return true
	}
	return false
}
