// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; hardcoding CREATE TABLE statements here would let
// test schemas drift from production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/beveridges/practice-app/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedInstrument inserts a test instrument and returns its ID.
func seedInstrument(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "INST-001"
	}
	if name == "" {
		name = "Test Saxophone"
	}
	_, err := db.Exec("INSERT INTO instruments (id, name, category) VALUES (?, ?, 'Woodwind')", id, name)
	if err != nil {
		t.Fatalf("failed to seed instrument: %v", err)
	}
	return id
}

// seedRoutine inserts a test routine and returns its ID.
func seedRoutine(t *testing.T, db *sql.DB, id, instrumentID string) string {
	t.Helper()
	if id == "" {
		id = "ROUT-001"
	}
	_, err := db.Exec(
		"INSERT INTO routines (id, instrument_id, task_type, frequency, interval_days, start_date) VALUES (?, ?, 'Cleaning', 'days', 7, '2025-01-01')",
		id, instrumentID,
	)
	if err != nil {
		t.Fatalf("failed to seed routine: %v", err)
	}
	return id
}

// seedOccurrence inserts a test occurrence and returns its ID.
func seedOccurrence(t *testing.T, db *sql.DB, id, routineID, instrumentID, dueDate string) string {
	t.Helper()
	if id == "" {
		id = "OCC-001"
	}
	if dueDate == "" {
		dueDate = "2025-01-01"
	}
	_, err := db.Exec(
		"INSERT INTO occurrences (id, routine_id, instrument_id, task_type, due_date, completed) VALUES (?, ?, ?, 'Cleaning', ?, 0)",
		id, routineID, instrumentID, dueDate,
	)
	if err != nil {
		t.Fatalf("failed to seed occurrence: %v", err)
	}
	return id
}
