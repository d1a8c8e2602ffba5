package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lumina-labs/recall/internal/core/domain"
	"github.com/lumina-labs/recall/internal/core/ports/driven"
	"github.com/lumina-labs/recall/internal/core/ports/driving"
	"github.com/lumina-labs/recall/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.IndexerService = (*Indexer)(nil)

// Indexer runs the ingestion pipeline: extract text, chunk it, embed
// each chunk, and append the records to the chunk store.
type Indexer struct {
	store      driven.ChunkStore
	embedder   driven.EmbeddingService
	extractors driven.ExtractorRegistry
	pipeline   driven.PostProcessorPipeline
}

// NewIndexer creates a new indexer service.
func NewIndexer(
	store driven.ChunkStore,
	embedder driven.EmbeddingService,
	extractors driven.ExtractorRegistry,
	pipeline driven.PostProcessorPipeline,
) *Indexer {
	return &Indexer{
		store:      store,
		embedder:   embedder,
		extractors: extractors,
		pipeline:   pipeline,
	}
}

// Ingest processes each path in order. Unsupported, unreadable and
// whitespace-only documents are skipped with zero chunks. A chunk whose
// embedding call fails is stored without a vector so it can be
// re-embedded later; it never aborts the rest of the batch. Only a
// store write failure stops ingestion, and everything appended before
// it stays persisted.
func (s *Indexer) Ingest(ctx context.Context, paths []string) (domain.IngestSummary, error) {
	logger.Section("Ingestion")

	var summary domain.IngestSummary

	if s.store == nil {
		return summary, domain.ErrStoreUnavailable
	}
	if s.embedder == nil {
		return summary, domain.ErrEmbeddingUnavailable
	}

	for _, path := range paths {
		indexed, err := s.ingestOne(ctx, path, &summary)
		if err != nil {
			return summary, err
		}
		if indexed {
			summary.FilesIndexed++
		} else {
			summary.FilesSkipped++
		}
	}

	logger.Info("Ingestion complete: %d chunks from %d files (%d skipped, %d embedding failures)",
		summary.ChunksIndexed, summary.FilesIndexed, summary.FilesSkipped, summary.EmbeddingFailures)

	return summary, nil
}

// ingestOne handles a single document. It returns false (with nil
// error) when the document was skipped.
func (s *Indexer) ingestOne(ctx context.Context, path string, summary *domain.IngestSummary) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("Skipping %s: %v", path, err)
		return false, nil
	}

	extractor, ok := s.extractors.ForPath(path)
	if !ok {
		logger.Debug("Skipping %s: unsupported type", path)
		return false, nil
	}

	content, err := extractor.Extract(ctx, path)
	if err != nil {
		// Extraction failure is recovered locally: the document
		// contributes zero chunks and the batch continues.
		logger.Warn("Extraction failed for %s: %v", path, err)
		return false, nil
	}
	if strings.TrimSpace(content) == "" {
		logger.Debug("Skipping %s: no text content", path)
		return false, nil
	}

	doc := domain.Document{
		ID:      uuid.New().String(),
		Path:    path,
		Content: content,
	}

	chunks, err := s.pipeline.Process(ctx, &doc)
	if err != nil {
		return false, fmt.Errorf("chunk %s: %w", path, err)
	}

	logger.Debug("Chunked %s into %d chunks", path, len(chunks))

	for i := range chunks {
		// The embedding call runs before and outside the store's
		// critical section; the append itself is short and independent.
		embedding, err := s.embedder.Embed(ctx, chunks[i].Content)
		if err != nil {
			logger.Warn("Embedding failed for chunk %d of %s: %v", chunks[i].Position, path, err)
			summary.EmbeddingFailures++
			embedding = nil
		}
		chunks[i].Embedding = embedding

		if _, err := s.store.Append(ctx, chunks[i]); err != nil {
			return false, fmt.Errorf("append chunk %d of %s: %w", chunks[i].Position, path, err)
		}
		summary.ChunksIndexed++
	}

	return true, nil
}
