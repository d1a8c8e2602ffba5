// Command recall indexes local documents and retrieves the most relevant
// chunks for a query using vector similarity.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	configfile "github.com/lumina-labs/recall/internal/adapters/driven/config/file"
	"github.com/lumina-labs/recall/internal/adapters/driven/embedding/ollama"
	"github.com/lumina-labs/recall/internal/adapters/driven/storage/sqlite"
	"github.com/lumina-labs/recall/internal/adapters/driving/cli"
	"github.com/lumina-labs/recall/internal/core/domain"
	"github.com/lumina-labs/recall/internal/core/services"
	"github.com/lumina-labs/recall/internal/extractors"
	"github.com/lumina-labs/recall/internal/logger"
	"github.com/lumina-labs/recall/internal/postprocessors"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening chunk store: %w", err)
	}
	defer store.Close()

	embedder := ollama.NewEmbeddingService(ollama.Config{
		BaseURL:           cfg.EmbeddingBaseURL,
		Model:             cfg.EmbeddingModel,
		Timeout:           cfg.EmbeddingTimeout,
		RequestsPerSecond: cfg.EmbeddingRequestsPerSecond,
	})
	defer embedder.Close()

	registry := extractors.NewDefaultRegistry()

	processors := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(processors)
	chunkerProc, err := processors.Build("chunker", map[string]any{
		"chunk_size": cfg.ChunkSize,
		"overlap":    cfg.ChunkOverlap,
	})
	if err != nil {
		return fmt.Errorf("building chunker: %w", err)
	}
	pipeline := postprocessors.NewPipeline(chunkerProc)

	indexer := services.NewIndexer(store, embedder, registry, pipeline)
	searcher := services.NewSearcher(store, embedder, cfg.TopK, cfg.ResultDelimiter)
	watcher := services.NewWatcher(indexer, registry, services.DefaultDebounce)

	cli.SetVersion(version)
	cli.Configure(cli.Services{
		Search:  searcher,
		Indexer: indexer,
		Watch:   watcher,
	})

	return cli.Execute()
}

// loadConfig reads the TOML config file and applies environment
// overrides. Missing file or keys fall back to the defaults.
func loadConfig() (domain.Config, error) {
	store, err := configfile.NewConfigStore(os.Getenv("RECALL_CONFIG_DIR"))
	if err != nil {
		return domain.Config{}, fmt.Errorf("opening config store: %w", err)
	}

	cfg, err := store.Load()
	if err != nil {
		return domain.Config{}, err
	}

	if v := os.Getenv("RECALL_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("RECALL_EMBEDDING_BASE_URL"); v != "" {
		cfg.EmbeddingBaseURL = v
	}
	if v := os.Getenv("RECALL_EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := os.Getenv("RECALL_TOP_K"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn("Ignoring RECALL_TOP_K=%q: %v", v, err)
		} else {
			cfg.TopK = k
		}
	}

	return cfg, nil
}
