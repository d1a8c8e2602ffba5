// Package sqlite provides a SQLite-based implementation of the ChunkStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.recall/data/index.db
//
// # Thread Safety
//
// All operations are thread-safe. The store runs on a single connection in
// WAL mode, so concurrent writers queue instead of failing with SQLITE_BUSY.
package sqlite
