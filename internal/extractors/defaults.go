package extractors

import (
	"github.com/lumina-labs/recall/internal/extractors/pdf"
	"github.com/lumina-labs/recall/internal/extractors/plaintext"
)

// NewDefaultRegistry returns a registry with the built-in extractors.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(pdf.New())
	return r
}
