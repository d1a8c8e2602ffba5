package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Index documents into the chunk store",
	Long: `Splits each document into overlapping chunks, embeds every chunk
and appends the records to the chunk store.

Unsupported file types, unreadable files and empty documents are skipped.
A chunk whose embedding call fails is still stored, without a vector, so
indexing one unreachable provider call never loses the text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexerService == nil {
		return errors.New("indexer service not configured")
	}

	summary, err := indexerService.Ingest(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Println(summary.Message())
	return nil
}
