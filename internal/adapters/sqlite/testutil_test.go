// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests load the schema through db.GetSchemaSQL() so they run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ssg/trid/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedIssued inserts issued numbers under batchID.
func seedIssued(t *testing.T, database *sql.DB, batchID string, numbers ...string) {
	t.Helper()
	for _, n := range numbers {
		if _, err := database.Exec("INSERT INTO issued_numbers (number, batch_id) VALUES (?, ?)", n, batchID); err != nil {
			t.Fatalf("failed to seed issued number %s: %v", n, err)
		}
	}
}
