package domain

// Document represents a local file handed to the ingestion pipeline.
// Documents are transient: only their chunks are persisted.
type Document struct {
	// ID is a unique identifier assigned at extraction time.
	ID string

	// Path is the filesystem path the document was read from.
	Path string

	// Content is the full extracted text before chunking.
	Content string
}

// Chunk is the atomic unit of the index: a bounded, possibly overlapping
// slice of a document's character stream together with its embedding.
// Chunks are immutable once stored; re-ingesting a path appends new
// chunks rather than replacing old ones.
type Chunk struct {
	// ID is the storage row identity, assigned on append.
	// It is bookkeeping only and never participates in ranking.
	ID int64

	// SourcePath is the originating document's path. Not unique; many
	// chunks share one path.
	SourcePath string

	// Content is the chunk text, at most the configured chunk size in
	// characters. The final chunk of a document may be shorter.
	Content string

	// Position is the ordinal position within the source document.
	Position int

	// Embedding is the vector representation produced by the embedding
	// provider. Nil when the embedding call failed; such chunks are
	// retained in storage but excluded from ranking.
	Embedding []float64
}

// HasEmbedding reports whether the chunk carries a usable vector.
func (c Chunk) HasEmbedding() bool {
	return len(c.Embedding) > 0
}
