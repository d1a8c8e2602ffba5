package driving

import "context"

// WatchService monitors directories and ingests files as they change.
type WatchService interface {
	// Watch blocks until the context is cancelled, re-ingesting
	// supported files on create and write events. Re-ingested files
	// accumulate duplicate chunks; that is the store's append-only
	// contract, not a watcher bug.
	Watch(ctx context.Context, dirs []string) error
}
