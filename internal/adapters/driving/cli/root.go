// Package cli implements the command line interface using cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lumina-labs/recall/internal/core/ports/driving"
	"github.com/lumina-labs/recall/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services. Commands check for nil so the package stays
// testable without a full wiring.
var (
	searchService  driving.SearchService
	indexerService driving.IndexerService
	watchService   driving.WatchService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "recall",
	Short: "Semantic document indexing and retrieval",
	Long: `Recall indexes local documents into a durable chunk store and
retrieves the most relevant chunks for a query using vector similarity.

Documents are split into overlapping chunks, each chunk is embedded via
a local Ollama instance, and searches rank every stored chunk by cosine
similarity against the query embedding.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles the driving ports the commands depend on.
type Services struct {
	Search  driving.SearchService
	Indexer driving.IndexerService
	Watch   driving.WatchService
}

// Configure injects the services used by the commands.
func Configure(s Services) {
	searchService = s.Search
	indexerService = s.Indexer
	watchService = s.Watch
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
