package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/recall/internal/core/ports/driven"
)

// stubExtractor is a minimal Extractor for registry tests.
type stubExtractor struct {
	name     string
	exts     []string
	priority int
}

func (s *stubExtractor) SupportedExtensions() []string { return s.exts }

func (s *stubExtractor) Priority() int { return s.priority }

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.name, nil
}

func TestRegistry_ForPath(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubExtractor{name: "text", exts: []string{"txt", "md"}, priority: 5})
	registry.Register(&stubExtractor{name: "pdf", exts: []string{"pdf"}, priority: 50})

	e, ok := registry.ForPath("/docs/readme.md")
	require.True(t, ok)
	content, _ := e.Extract(context.Background(), "")
	assert.Equal(t, "text", content)

	e, ok = registry.ForPath("/docs/manual.PDF")
	require.True(t, ok, "extension match is case-insensitive")
	content, _ = e.Extract(context.Background(), "")
	assert.Equal(t, "pdf", content)
}

func TestRegistry_ForPath_Unsupported(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubExtractor{name: "text", exts: []string{"txt"}, priority: 5})

	_, ok := registry.ForPath("/image.png")
	assert.False(t, ok)

	_, ok = registry.ForPath("/no-extension")
	assert.False(t, ok)
}

func TestRegistry_PriorityWins(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubExtractor{name: "fallback", exts: []string{"md"}, priority: 5})
	registry.Register(&stubExtractor{name: "specialised", exts: []string{"md"}, priority: 50})

	e, ok := registry.ForPath("/notes.md")
	require.True(t, ok)
	content, _ := e.Extract(context.Background(), "")
	assert.Equal(t, "specialised", content)
}

func TestRegistry_SupportedExtensions(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubExtractor{exts: []string{"txt", "md"}, priority: 5})
	registry.Register(&stubExtractor{exts: []string{"md", "pdf"}, priority: 50})

	exts := registry.SupportedExtensions()
	assert.ElementsMatch(t, []string{"txt", "md", "pdf"}, exts)
}

func TestRegistry_Empty(t *testing.T) {
	registry := NewRegistry()
	_, ok := registry.ForPath("/anything.txt")
	assert.False(t, ok)
	assert.Empty(t, registry.SupportedExtensions())
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.ExtractorRegistry = (*Registry)(nil)
}
