package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lumina-labs/recall/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lumina-labs/recall/internal/core/domain"
	"github.com/lumina-labs/recall/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ChunkStore = (*Store)(nil)

// Store is a SQLite-backed chunk store. Chunks are append-only records;
// the embedding vector is stored as a raw float64 blob so round trips
// are bit-exact.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.recall/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".recall", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection serialises writers; readers queue behind the
	// busy timeout instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Append stores a chunk and returns its assigned ID. A chunk without an
// embedding is stored with a NULL vector.
func (s *Store) Append(ctx context.Context, chunk domain.Chunk) (int64, error) {
	var embedding any
	if chunk.HasEmbedding() {
		embedding = float64SliceToBytes(chunk.Embedding)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO chunks (source_path, content, position, embedding)
		VALUES (?, ?, ?, ?)
	`, chunk.SourcePath, chunk.Content, chunk.Position, embedding)
	if err != nil {
		return 0, fmt.Errorf("appending chunk: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting chunk id: %w", err)
	}
	return id, nil
}

// ScanAll returns every stored chunk in insertion order.
func (s *Store) ScanAll(ctx context.Context) ([]domain.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, content, position, embedding
		FROM chunks ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("scanning chunks: %w", err)
	}
	defer rows.Close()

	var chunks []domain.Chunk
	for rows.Next() {
		var chunk domain.Chunk
		var embedding []byte
		if err := rows.Scan(&chunk.ID, &chunk.SourcePath, &chunk.Content, &chunk.Position, &embedding); err != nil {
			return nil, fmt.Errorf("scanning chunk row: %w", err)
		}
		if embedding != nil {
			vec, err := bytesToFloat64Slice(embedding)
			if err != nil {
				return nil, fmt.Errorf("decoding embedding for chunk %d: %w", chunk.ID, err)
			}
			chunk.Embedding = vec
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}
	return chunks, nil
}

// CountBySource returns the number of chunks stored for a source path.
func (s *Store) CountBySource(ctx context.Context, sourcePath string) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks WHERE source_path = ?`, sourcePath)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// float64SliceToBytes converts a float64 slice to a little-endian byte
// slice for blob storage.
func float64SliceToBytes(floats []float64) []byte {
	bytes := make([]byte, len(floats)*8)
	for i, f := range floats {
		binary.LittleEndian.PutUint64(bytes[i*8:], math.Float64bits(f))
	}
	return bytes
}

// bytesToFloat64Slice converts a little-endian byte slice back to a
// float64 slice.
func bytesToFloat64Slice(bytes []byte) ([]float64, error) {
	if len(bytes)%8 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d", len(bytes))
	}
	floats := make([]float64, len(bytes)/8)
	for i := range floats {
		floats[i] = math.Float64frombits(binary.LittleEndian.Uint64(bytes[i*8:]))
	}
	return floats, nil
}
