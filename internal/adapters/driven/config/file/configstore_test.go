package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/recall/internal/core/domain"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.NoFileExists(t, store.Path(), "Load alone must not create the file")
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg := domain.DefaultConfig()
	cfg.ChunkSize = 500
	cfg.ChunkOverlap = 100
	cfg.TopK = 5
	cfg.EmbeddingModel = "mxbai-embed-large"

	require.NoError(t, store.Save(cfg))
	assert.FileExists(t, store.Path())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("top_k = 7\n"), 0o600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TopK)
	assert.Equal(t, domain.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, domain.DefaultEmbeddingModel, cfg.EmbeddingModel)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("not [valid toml"), 0o600))

	_, err = store.Load()
	assert.Error(t, err)
}
