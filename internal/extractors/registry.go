package extractors

import (
	"path/filepath"
	"strings"

	"github.com/lumina-labs/recall/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches file paths to extractors by extension. When
// multiple extractors claim the same extension the highest priority
// wins.
type Registry struct {
	extractors []driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(e driven.Extractor) {
	r.extractors = append(r.extractors, e)
}

// ForPath returns the best extractor for the path's extension, or false
// when no registered extractor supports the file type.
func (r *Registry) ForPath(path string) (driven.Extractor, bool) {
	ext := normaliseExtension(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}

	var best driven.Extractor
	for _, e := range r.extractors {
		if !supports(e, ext) {
			continue
		}
		if best == nil || e.Priority() > best.Priority() {
			best = e
		}
	}
	return best, best != nil
}

// SupportedExtensions returns the union of all registered extensions.
func (r *Registry) SupportedExtensions() []string {
	seen := make(map[string]struct{})
	var exts []string
	for _, e := range r.extractors {
		for _, ext := range e.SupportedExtensions() {
			ext = normaliseExtension(ext)
			if _, ok := seen[ext]; ok {
				continue
			}
			seen[ext] = struct{}{}
			exts = append(exts, ext)
		}
	}
	return exts
}

func supports(e driven.Extractor, ext string) bool {
	for _, candidate := range e.SupportedExtensions() {
		if normaliseExtension(candidate) == ext {
			return true
		}
	}
	return false
}

func normaliseExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
