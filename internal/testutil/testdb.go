package testutil

import (
	"database/sql"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/db"
)

// NewTestDB creates a fresh in-memory store with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
