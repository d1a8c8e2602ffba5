// Package chunker provides a fixed-size overlapping text chunking processor.
package chunker

import (
	"context"
	"fmt"

	"github.com/lumina-labs/recall/internal/core/domain"
)

// Processor splits document content into fixed-size overlapping chunks.
// It operates on the character sequence, not raw bytes, so multi-byte
// characters are never split. It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		p.chunkSize = size
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		p.overlap = overlap
	}
}

// New creates a new chunker processor with the given options.
// A size not greater than the overlap would keep the chunking loop from
// ever advancing, so New rejects it here instead of hanging later.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		chunkSize: domain.DefaultChunkSize,
		overlap:   domain.DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.overlap <= 0 {
		return nil, fmt.Errorf("%w: overlap %d must be greater than zero", domain.ErrInvalidChunking, p.overlap)
	}
	if p.chunkSize <= p.overlap {
		return nil, fmt.Errorf("%w: size %d, overlap %d", domain.ErrInvalidChunking, p.chunkSize, p.overlap)
	}

	return p, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from
// document content. Empty content produces zero chunks. The final chunk
// ends exactly at the end of the text and may be shorter than the
// configured size.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if doc.Content == "" {
		return nil, nil
	}

	runes := []rune(doc.Content)
	total := len(runes)

	step := p.chunkSize - p.overlap
	chunks := make([]domain.Chunk, 0, total/step+1)

	position := 0
	start := 0

	for start < total {
		end := start + p.chunkSize
		if end > total {
			end = total
		}

		chunks = append(chunks, domain.Chunk{
			SourcePath: doc.Path,
			Content:    string(runes[start:end]),
			Position:   position,
		})
		position++

		if end == total {
			break
		}
		start += step
	}

	return chunks, nil
}
