package domain

import "fmt"

// RankedChunk is a chunk paired with its similarity score for a query.
type RankedChunk struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the cosine similarity against the query vector (0-1 for
	// typical embedding models).
	Score float64
}

// IngestSummary reports the outcome of one ingestion batch.
// Per-document failures are absorbed into counts rather than aborting
// the batch; ChunksIndexed is the headline figure.
type IngestSummary struct {
	// ChunksIndexed is the total number of chunks appended to the store.
	ChunksIndexed int

	// FilesIndexed is the number of documents that contributed chunks.
	FilesIndexed int

	// FilesSkipped counts unreadable, unsupported, or empty documents.
	// A skip contributes zero chunks and is not an error.
	FilesSkipped int

	// EmbeddingFailures counts chunks stored without a vector because
	// the embedding call failed. They remain eligible for re-embedding
	// but are excluded from ranking.
	EmbeddingFailures int
}

// Message renders the human-readable ingestion summary.
func (s IngestSummary) Message() string {
	return fmt.Sprintf("Indexed %d text chunks from %d documents (%d skipped, %d embedding failures).",
		s.ChunksIndexed, s.FilesIndexed, s.FilesSkipped, s.EmbeddingFailures)
}
