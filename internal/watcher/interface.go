package watcher

import "context"

// Watcher monitors a drop directory for URL-list files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one dropped URL-list file
type EventHandler func(ctx context.Context, filePath string) error
