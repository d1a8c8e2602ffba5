package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChunking indicates a chunking configuration that would
	// never advance (size not greater than overlap). It is rejected
	// before any chunking work begins.
	ErrInvalidChunking = errors.New("chunk size must exceed overlap")

	// ErrUnsupportedType indicates a file type with no registered extractor.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrEmbeddingConnection indicates the embedding provider could not
	// be reached, timed out, or returned a malformed response.
	ErrEmbeddingConnection = errors.New("embedding provider unreachable")

	// ErrEmbeddingRejected indicates the embedding provider answered but
	// rejected the request (e.g. unknown model).
	ErrEmbeddingRejected = errors.New("embedding provider rejected request")

	// ErrEmbeddingUnavailable indicates no embedding service is configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStoreUnavailable indicates no chunk store is configured.
	ErrStoreUnavailable = errors.New("chunk store unavailable")
)
