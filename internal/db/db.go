package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) a file-backed SQLite store at path and
// applies the schema. Used when LEXPRO_DB is set, so a demo session can be
// inspected with the sqlite shell afterwards.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return database, nil
}

// OpenMemory opens the process-scoped in-memory SQLite store and applies the
// schema. All application state lives here; it is discarded when the process
// exits. The connection pool is pinned to a single connection because each
// new in-memory connection would otherwise see a fresh, empty database.
func OpenMemory() (*sql.DB, error) {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return database, nil
}

// Migrate applies all schema statements in order.
func Migrate(database *sql.DB) error {
	for i, stmt := range schema {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
