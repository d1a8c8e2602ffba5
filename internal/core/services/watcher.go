package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lumina-labs/recall/internal/core/ports/driven"
	"github.com/lumina-labs/recall/internal/core/ports/driving"
	"github.com/lumina-labs/recall/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driving.WatchService = (*Watcher)(nil)

// DefaultDebounce is how long the watcher waits after the last change
// event before re-ingesting, so editors that write in bursts trigger a
// single ingestion.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors directories with fsnotify and feeds changed files
// into the indexer.
type Watcher struct {
	indexer    driving.IndexerService
	extractors driven.ExtractorRegistry
	debounce   time.Duration
}

// NewWatcher creates a new directory watcher. A zero debounce uses
// DefaultDebounce.
func NewWatcher(indexer driving.IndexerService, extractors driven.ExtractorRegistry, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		indexer:    indexer,
		extractors: extractors,
		debounce:   debounce,
	}
}

// Watch blocks until ctx is cancelled, ingesting supported files on
// create and write events. Events for unsupported types are dropped
// before they reach the indexer.
func (w *Watcher) Watch(ctx context.Context, dirs []string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Info("Watching %s", dir)
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if _, supported := w.extractors.ForPath(event.Name); !supported {
				continue
			}
			logger.Debug("Change detected: %s (%s)", event.Name, event.Op)
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			pending = make(map[string]struct{})

			summary, err := w.indexer.Ingest(ctx, paths)
			if err != nil {
				logger.Warn("Ingestion of watched files failed: %v", err)
				continue
			}
			logger.Info("%s", summary.Message())
		}
	}
}
