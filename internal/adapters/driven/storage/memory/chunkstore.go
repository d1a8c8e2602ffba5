// Package memory provides in-memory storage implementations for
// testing and ephemeral runs. Nothing here survives a restart; the
// sqlite adapter is the durable twin.
package memory

import (
	"context"
	"sync"

	"github.com/lumina-labs/recall/internal/core/domain"
	"github.com/lumina-labs/recall/internal/core/ports/driven"
)

// Ensure ChunkStore implements the interface.
var _ driven.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is a mutex-guarded in-memory chunk store.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
	nextID int64
}

// NewChunkStore creates an empty in-memory chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{nextID: 1}
}

// Append stores one chunk and returns its assigned row identity.
func (s *ChunkStore) Append(_ context.Context, chunk domain.Chunk) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunk.ID = s.nextID
	s.nextID++

	// Copy the embedding so later caller mutations cannot reach into
	// the stored record.
	if chunk.Embedding != nil {
		embedding := make([]float64, len(chunk.Embedding))
		copy(embedding, chunk.Embedding)
		chunk.Embedding = embedding
	}

	s.chunks = append(s.chunks, chunk)
	return chunk.ID, nil
}

// ScanAll returns every stored chunk in insertion order.
func (s *ChunkStore) ScanAll(_ context.Context) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Chunk, len(s.chunks))
	copy(out, s.chunks)
	return out, nil
}

// CountBySource returns the number of chunks stored for a source path.
func (s *ChunkStore) CountBySource(_ context.Context, sourcePath string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.chunks {
		if s.chunks[i].SourcePath == sourcePath {
			count++
		}
	}
	return count, nil
}

// Close is a no-op for the in-memory store.
func (s *ChunkStore) Close() error {
	return nil
}
