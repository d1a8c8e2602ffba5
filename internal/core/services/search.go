package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lumina-labs/recall/internal/core/domain"
	"github.com/lumina-labs/recall/internal/core/ports/driven"
	"github.com/lumina-labs/recall/internal/core/ports/driving"
	"github.com/lumina-labs/recall/internal/logger"
)

// Ensure Searcher implements the interface.
var _ driving.SearchService = (*Searcher)(nil)

// Searcher answers similarity queries with a linear scan over the chunk
// store. Cost is O(N*D) per query for N stored chunks of dimension D,
// which is fine at the scale of a local personal document index.
type Searcher struct {
	store     driven.ChunkStore
	embedder  driven.EmbeddingService
	topK      int
	delimiter string
}

// NewSearcher creates a new search service. topK and delimiter fall
// back to the engine defaults when unset.
func NewSearcher(store driven.ChunkStore, embedder driven.EmbeddingService, topK int, delimiter string) *Searcher {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	if delimiter == "" {
		delimiter = domain.DefaultResultDelimiter
	}
	return &Searcher{
		store:     store,
		embedder:  embedder,
		topK:      topK,
		delimiter: delimiter,
	}
}

// Search returns the top-K chunk texts joined with the configured
// delimiter. An empty index returns an empty string; a query that
// cannot be embedded fails the request.
func (s *Searcher) Search(ctx context.Context, query string) (string, error) {
	results, err := s.SearchResults(ctx, query, s.topK)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(results))
	for i := range results {
		texts[i] = results[i].Chunk.Content
	}
	return strings.Join(texts, s.delimiter), nil
}

// SearchResults embeds the query, scans every stored chunk and returns
// the k highest-scoring ones. Ordering is descending by score with ties
// kept in scan order, so equal scores rank deterministically.
func (s *Searcher) SearchResults(ctx context.Context, query string, k int) ([]domain.RankedChunk, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if k <= 0 {
		k = s.topK
	}

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.RankedChunk{}, nil
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		// A query with no vector cannot be ranked at all.
		return nil, fmt.Errorf("embed query: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(queryVec))

	chunks, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan chunks: %w", err)
	}
	logger.Debug("Scanning %d stored chunks", len(chunks))

	ranked := rank(queryVec, chunks)

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	logger.Info("Returning %d of %d scorable chunks", len(ranked), len(chunks))

	return ranked, nil
}

// rank scores every usable candidate against the query vector and
// sorts descending. Chunks without an embedding never score, and a
// candidate whose dimension differs from the query is excluded rather
// than silently mis-scored.
func rank(queryVec []float64, chunks []domain.Chunk) []domain.RankedChunk {
	ranked := make([]domain.RankedChunk, 0, len(chunks))

	for i := range chunks {
		if !chunks[i].HasEmbedding() {
			continue
		}
		if len(chunks[i].Embedding) != len(queryVec) {
			logger.Debug("Excluding chunk %d: dimension %d != query %d",
				chunks[i].ID, len(chunks[i].Embedding), len(queryVec))
			continue
		}
		ranked = append(ranked, domain.RankedChunk{
			Chunk: chunks[i],
			Score: domain.CosineSimilarity(queryVec, chunks[i].Embedding),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
