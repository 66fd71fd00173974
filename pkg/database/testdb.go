package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/jmoiron/sqlx"
)

// NewTestDB opens a private in-memory SQLite database with migrations applied.
func NewTestDB(t *testing.T, migrations fs.FS) *sqlx.DB {
	t.Helper()

	db, err := NewDB(context.Background(), &DB{Driver: DriverSQLite, Path: ":memory:"}, migrations)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
