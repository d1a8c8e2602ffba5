package domain

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	// DefaultChunkSize is the number of characters per chunk.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the number of characters shared between
	// consecutive chunks.
	DefaultChunkOverlap = 200

	// DefaultTopK is the number of chunks returned by a search.
	DefaultTopK = 3

	// DefaultResultDelimiter separates chunk texts in the context blob.
	DefaultResultDelimiter = "\n---\n"

	// DefaultEmbeddingBaseURL is the local Ollama endpoint.
	DefaultEmbeddingBaseURL = "http://localhost:11434"

	// DefaultEmbeddingModel is the embedding model identifier.
	DefaultEmbeddingModel = "nomic-embed-text"

	// DefaultEmbeddingTimeout bounds a single embedding request.
	DefaultEmbeddingTimeout = 30 * time.Second
)

// Config holds engine configuration with documented defaults.
// It is passed in at construction time; the engine never reads globals.
type Config struct {
	// DataDir is where the chunk store lives. Empty means ~/.recall/data.
	DataDir string `toml:"data_dir"`

	// ChunkSize is the chunk window in characters. Must exceed ChunkOverlap.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the characters shared between consecutive chunks.
	// Must be greater than zero and less than ChunkSize.
	ChunkOverlap int `toml:"chunk_overlap"`

	// TopK is how many chunks a search returns.
	TopK int `toml:"top_k"`

	// ResultDelimiter separates chunk texts in the search context blob.
	ResultDelimiter string `toml:"result_delimiter"`

	// EmbeddingBaseURL is the embedding provider endpoint.
	EmbeddingBaseURL string `toml:"embedding_base_url"`

	// EmbeddingModel is the provider model identifier.
	EmbeddingModel string `toml:"embedding_model"`

	// EmbeddingTimeout bounds a single embedding request.
	EmbeddingTimeout time.Duration `toml:"embedding_timeout"`

	// EmbeddingRequestsPerSecond rate-limits provider calls.
	// Zero disables the limiter.
	EmbeddingRequestsPerSecond float64 `toml:"embedding_requests_per_second"`
}

// DefaultConfig returns a Config populated with all defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        DefaultChunkSize,
		ChunkOverlap:     DefaultChunkOverlap,
		TopK:             DefaultTopK,
		ResultDelimiter:  DefaultResultDelimiter,
		EmbeddingBaseURL: DefaultEmbeddingBaseURL,
		EmbeddingModel:   DefaultEmbeddingModel,
		EmbeddingTimeout: DefaultEmbeddingTimeout,
	}
}

// Validate rejects configurations the engine cannot run with.
// A chunk size not greater than the overlap would make the chunker loop
// forever, so it fails here rather than at chunking time.
func (c Config) Validate() error {
	if c.ChunkOverlap <= 0 {
		return fmt.Errorf("%w: overlap %d must be greater than zero", ErrInvalidChunking, c.ChunkOverlap)
	}
	if c.ChunkSize <= c.ChunkOverlap {
		return fmt.Errorf("%w: size %d, overlap %d", ErrInvalidChunking, c.ChunkSize, c.ChunkOverlap)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("%w: top_k must be positive, got %d", ErrInvalidInput, c.TopK)
	}
	if c.EmbeddingBaseURL == "" {
		return fmt.Errorf("%w: embedding_base_url is required", ErrInvalidInput)
	}
	if c.EmbeddingModel == "" {
		return fmt.Errorf("%w: embedding_model is required", ErrInvalidInput)
	}
	return nil
}
