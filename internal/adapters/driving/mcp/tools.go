package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find document chunks"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of chunks to return (default 3)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single matched chunk.
type SearchResultOutput struct {
	SourcePath string  `json:"source_path"`
	Position   int     `json:"position"`
	Score      float64 `json:"score"`
	Content    string  `json:"content"`
}

// IndexInput is the input schema for the index tool.
type IndexInput struct {
	Paths []string `json:"paths" jsonschema:"file paths to index"`
}

// IndexOutput is the output schema for the index tool.
type IndexOutput struct {
	ChunksIndexed     int `json:"chunks_indexed"`
	FilesIndexed      int `json:"files_indexed"`
	FilesSkipped      int `json:"files_skipped"`
	EmbeddingFailures int `json:"embedding_failures"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search indexed documents by semantic similarity",
	}, s.handleSearch)

	if s.ports.Indexer != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "index",
			Description: "Index local files into the chunk store",
		}, s.handleIndex)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 3
	}

	results, err := s.ports.Search.SearchResults(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			SourcePath: results[i].Chunk.SourcePath,
			Position:   results[i].Chunk.Position,
			Score:      results[i].Score,
			Content:    results[i].Chunk.Content,
		}
	}

	return nil, output, nil
}

// handleIndex handles the index tool invocation.
func (s *Server) handleIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexInput,
) (*mcp.CallToolResult, IndexOutput, error) {
	summary, err := s.ports.Indexer.Ingest(ctx, input.Paths)
	if err != nil {
		return nil, IndexOutput{}, err
	}

	return nil, IndexOutput{
		ChunksIndexed:     summary.ChunksIndexed,
		FilesIndexed:      summary.FilesIndexed,
		FilesSkipped:      summary.FilesSkipped,
		EmbeddingFailures: summary.EmbeddingFailures,
	}, nil
}
