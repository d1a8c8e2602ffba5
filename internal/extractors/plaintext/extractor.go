package plaintext

import (
	"context"
	"os"

	"github.com/lumina-labs/recall/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text files: the file bytes are the content.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{
		"txt",
		"md",
		"json",
		"rs",
		"go",
		"ts",
		"tsx",
		"js",
		"py",
		"yaml",
		"yml",
		"toml",
		"csv",
		"html",
		"css",
		"sh",
		"sql",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract reads the file and returns its content as-is.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
