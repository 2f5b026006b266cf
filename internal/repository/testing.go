package repository

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"testing"

	dbfiles "github.com/lewtec/photocheck/db"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory SQLite database with the migrated schema for testing
func SetupTestDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	MustExec(t, db, "PRAGMA foreign_keys = ON")

	files, err := fs.Glob(dbfiles.Migrations, "migrations/*.up.sql")
	if err != nil {
		t.Fatalf("failed to list migrations: %v", err)
	}
	sort.Strings(files)
	for _, name := range files {
		content, err := fs.ReadFile(dbfiles.Migrations, name)
		if err != nil {
			t.Fatalf("failed to read migration %s: %v", name, err)
		}
		MustExec(t, db, string(content))
	}

	return db
}

// CleanupTestDB closes the test database
func CleanupTestDB(t testing.TB, db *sql.DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// MustExec executes a SQL statement and fails the test if it errors
func MustExec(t testing.TB, db *sql.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("failed to exec query: %v", err)
	}
}
