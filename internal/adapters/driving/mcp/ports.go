package mcp

import (
	"github.com/lumina-labs/recall/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides retrieval over the chunk store.
	Search driving.SearchService

	// Indexer ingests documents into the chunk store.
	Indexer driving.IndexerService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Indexer is optional: without it only the search tool is exposed.
	return nil
}
