package driven

import (
	"context"

	"github.com/lumina-labs/recall/internal/core/domain"
)

// ChunkStore durably persists chunk records.
// Backed by SQLite; the store is append-mostly and never updates or
// deletes chunks. Implementations must serialise all access through a
// single logical owner, because the backing connection is not safe for
// unsynchronised concurrent use.
type ChunkStore interface {
	// Append durably persists one chunk and returns its row identity.
	// The record must survive a process crash once Append returns.
	// A chunk without an embedding is stored with an explicit no-vector
	// marker, not a zero-length guess.
	Append(ctx context.Context, chunk domain.Chunk) (int64, error)

	// ScanAll returns every persisted chunk. Order is unspecified;
	// implementations may return insertion order but ranking does not
	// depend on it.
	ScanAll(ctx context.Context) ([]domain.Chunk, error)

	// CountBySource returns how many chunks exist for a source path.
	// Re-ingesting a path accumulates duplicates; the store never
	// replaces records.
	CountBySource(ctx context.Context, sourcePath string) (int, error)

	// Close releases the backing connection.
	Close() error
}
