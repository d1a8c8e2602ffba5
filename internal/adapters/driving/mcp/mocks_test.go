package mcp

import (
	"context"

	"github.com/lumina-labs/recall/internal/core/domain"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	blob    string
	results []domain.RankedChunk
	err     error
	lastK   int
}

func (m *mockSearchService) Search(_ context.Context, _ string) (string, error) {
	return m.blob, m.err
}

func (m *mockSearchService) SearchResults(_ context.Context, _ string, k int) ([]domain.RankedChunk, error) {
	m.lastK = k
	return m.results, m.err
}

// mockIndexerService implements driving.IndexerService for testing.
type mockIndexerService struct {
	summary domain.IngestSummary
	err     error
	paths   []string
}

func (m *mockIndexerService) Ingest(_ context.Context, paths []string) (domain.IngestSummary, error) {
	m.paths = paths
	return m.summary, m.err
}
