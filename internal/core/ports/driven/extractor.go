package driven

import "context"

// Extractor reads raw text out of a local file.
// Each extractor handles specific file extensions (e.g. PDF, plain text).
type Extractor interface {
	// SupportedExtensions returns lower-case extensions without the dot.
	SupportedExtensions() []string

	// Priority returns the selection priority (higher = preferred) when
	// multiple extractors claim the same extension.
	Priority() int

	// Extract returns the document text. A failed or empty extraction
	// yields empty text; the caller treats that as "zero chunks, skip".
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorRegistry selects an extractor for a file path.
type ExtractorRegistry interface {
	// Register adds an extractor to the registry.
	Register(e Extractor)

	// ForPath returns the highest-priority extractor for the path's
	// extension, or false when the type is unsupported.
	ForPath(path string) (Extractor, bool)
}
