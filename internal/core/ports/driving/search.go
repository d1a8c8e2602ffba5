package driving

import (
	"context"

	"github.com/lumina-labs/recall/internal/core/domain"
)

// SearchService answers similarity queries against the chunk index.
type SearchService interface {
	// Search embeds the query, ranks every stored chunk by cosine
	// similarity and returns the top-K chunk texts joined with the
	// configured delimiter. An empty index yields an empty string, not
	// an error. A query that cannot be embedded cannot be searched;
	// that failure is fatal to the request.
	Search(ctx context.Context, query string) (string, error)

	// SearchResults returns the top-k scored chunks for presentation
	// surfaces. Fewer than k usable candidates returns as many as exist.
	SearchResults(ctx context.Context, query string, k int) ([]domain.RankedChunk, error)
}
