package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/recall/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "recall-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.FileExists(t, store.Path())
	assert.Equal(t, "index.db", filepath.Base(store.Path()))
}

func TestNewStore_NestedDataDir(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "recall-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	nested := filepath.Join(tempDir, "a", "b", "data")
	store, err := NewStore(nested)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nested)
}

func TestAppendAndScanAll(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	id1, err := store.Append(ctx, domain.Chunk{
		SourcePath: "/docs/a.txt",
		Content:    "first chunk",
		Position:   0,
		Embedding:  []float64{0.1, -0.5, 1e-300, 2.5},
	})
	require.NoError(t, err)

	id2, err := store.Append(ctx, domain.Chunk{
		SourcePath: "/docs/a.txt",
		Content:    "second chunk",
		Position:   1,
		Embedding:  []float64{1, 0, 0, 0},
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	chunks, err := store.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Equal(t, id1, chunks[0].ID)
	assert.Equal(t, "/docs/a.txt", chunks[0].SourcePath)
	assert.Equal(t, "first chunk", chunks[0].Content)
	assert.Equal(t, 0, chunks[0].Position)
	// Blob round trip is bit-exact for float64 values.
	assert.Equal(t, []float64{0.1, -0.5, 1e-300, 2.5}, chunks[0].Embedding)

	assert.Equal(t, id2, chunks[1].ID)
	assert.Equal(t, 1, chunks[1].Position)
}

func TestAppend_NilEmbeddingStoredAsNull(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.Append(ctx, domain.Chunk{
		SourcePath: "/docs/a.txt",
		Content:    "unembedded",
	})
	require.NoError(t, err)

	chunks, err := store.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Nil(t, chunks[0].Embedding)
	assert.False(t, chunks[0].HasEmbedding())
}

func TestScanAll_EmptyStore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	chunks, err := store.ScanAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestCountBySource(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Append(ctx, domain.Chunk{SourcePath: "/a.txt", Content: "x", Position: i})
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, domain.Chunk{SourcePath: "/b.txt", Content: "y"})
	require.NoError(t, err)

	count, err := store.CountBySource(ctx, "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = store.CountBySource(ctx, "/missing.txt")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReopen_DataSurvives(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "recall-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)
	ctx := context.Background()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	_, err = store.Append(ctx, domain.Chunk{
		SourcePath: "/persist.txt",
		Content:    "durable",
		Embedding:  []float64{0.25, 0.75},
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs migrations again; they must be idempotent.
	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	chunks, err := reopened.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "durable", chunks[0].Content)
	assert.Equal(t, []float64{0.25, 0.75}, chunks[0].Embedding)
}

func TestFloat64BlobCodec(t *testing.T) {
	vectors := [][]float64{
		{},
		{0},
		{1.5, -2.25, 3.125},
		{1e308, -1e308, 5e-324},
	}

	for _, vec := range vectors {
		decoded, err := bytesToFloat64Slice(float64SliceToBytes(vec))
		require.NoError(t, err)
		assert.Equal(t, len(vec), len(decoded))
		for i := range vec {
			assert.Equal(t, vec[i], decoded[i])
		}
	}
}

func TestBytesToFloat64Slice_InvalidLength(t *testing.T) {
	_, err := bytesToFloat64Slice([]byte{1, 2, 3})
	assert.Error(t, err)
}
