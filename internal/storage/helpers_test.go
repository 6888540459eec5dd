// ABOUTME: Shared test helpers for storage package tests.
// ABOUTME: Provides a temp-dir SQLite database per test.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}
