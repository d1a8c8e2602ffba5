package driving

import (
	"context"

	"github.com/lumina-labs/recall/internal/core/domain"
)

// IndexerService ingests local files into the chunk index.
type IndexerService interface {
	// Ingest extracts, chunks, embeds and stores each readable path.
	// Unreadable or unsupported paths are skipped, not failed; a chunk
	// whose embedding call fails is stored without a vector. Only a
	// store write failure aborts the batch, and chunks appended before
	// the failure remain persisted. The returned summary reflects
	// everything indexed up to that point.
	Ingest(ctx context.Context, paths []string) (domain.IngestSummary, error)
}
