package driven

import "context"

// EmbeddingService generates vector embeddings from text via an
// external, independently-running provider. Every call is at-most-once:
// there is no internal retry, and callers decide how to recover.
//
// Failures are classified with the domain sentinels:
// ErrEmbeddingConnection for transport problems and malformed
// responses, ErrEmbeddingRejected for provider-reported errors.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// One network request per call.
	Embed(ctx context.Context, text string) ([]float64, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the provider is reachable with a lightweight
	// request that runs no inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
