// Package sqlite_test contains integration tests for SQLite repositories.
//
// The database schema is loaded in exactly one place: setupTestDB uses
// db.GetSchemaSQL() so tests always run against the authoritative schema.
// Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tether/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedSpace inserts a test space and returns its ID.
func seedSpace(t *testing.T, db *sql.DB, id, remoteID, name string) string {
	t.Helper()
	if id == "" {
		id = "sp_000000000001"
	}
	if name == "" {
		name = "Test Space"
	}
	var err error
	if remoteID == "" {
		_, err = db.Exec("INSERT INTO spaces (id, name) VALUES (?, ?)", id, name)
	} else {
		_, err = db.Exec("INSERT INTO spaces (id, remote_id, name) VALUES (?, ?, ?)", id, remoteID, name)
	}
	if err != nil {
		t.Fatalf("failed to seed space: %v", err)
	}
	return id
}

// seedWorkspace inserts a test workspace and returns its ID.
func seedWorkspace(t *testing.T, db *sql.DB, id, parentID, name string) string {
	t.Helper()
	if id == "" {
		id = "wrk_000000000001"
	}
	if parentID == "" {
		parentID = "sp_000000000001"
	}
	if name == "" {
		name = "Test Workspace"
	}
	_, err := db.Exec("INSERT INTO workspaces (id, name, parent_id, scope) VALUES (?, ?, ?, 'collection')", id, name, parentID)
	if err != nil {
		t.Fatalf("failed to seed workspace: %v", err)
	}
	return id
}

// seedDocument inserts a test document and returns its ID.
func seedDocument(t *testing.T, db *sql.DB, id, parentID, name string) string {
	t.Helper()
	if id == "" {
		id = "req_000000000001"
	}
	if parentID == "" {
		parentID = "sp_000000000001"
	}
	if name == "" {
		name = "Test Request"
	}
	_, err := db.Exec("INSERT INTO documents (id, parent_id, type, name) VALUES (?, ?, 'request', ?)", id, parentID, name)
	if err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}
	return id
}
