package db

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth: tests build their databases from GetSchemaSQL() so any
// drift between repository code and schema fails immediately with
// "no such column".
//
// Keep this in sync with the migrations list when adding columns or
// tables: add the migration first, then fold the change in here.
const SchemaSQL = `
-- Instruments (the physical items routines attach to)
CREATE TABLE IF NOT EXISTS instruments (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'Other',
	notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Routines (recurrence rules, one per task type per instrument)
CREATE TABLE IF NOT EXISTS routines (
	id TEXT PRIMARY KEY,
	instrument_id TEXT NOT NULL,
	task_type TEXT NOT NULL,
	frequency TEXT NOT NULL,
	interval_days INTEGER NOT NULL DEFAULT 0,
	start_date TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (instrument_id) REFERENCES instruments(id) ON DELETE CASCADE
);

-- Occurrences (materialized due-dated tasks)
-- instrument_id and task_type are frozen copies from the routine.
-- UNIQUE(routine_id, due_date) makes generation idempotent under
-- concurrent calls.
CREATE TABLE IF NOT EXISTS occurrences (
	id TEXT PRIMARY KEY,
	routine_id TEXT NOT NULL,
	instrument_id TEXT NOT NULL,
	task_type TEXT NOT NULL,
	due_date TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	completed_at DATETIME,
	notes TEXT NOT NULL DEFAULT '',
	photo_url TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE,
	UNIQUE (routine_id, due_date)
);

-- Completion log (append-only audit trail)
-- occurrence_id is deliberately NOT a foreign key: records must survive
-- cascade deletion of their occurrence.
CREATE TABLE IF NOT EXISTS completions (
	id TEXT PRIMARY KEY,
	occurrence_id TEXT NOT NULL,
	instrument_id TEXT NOT NULL,
	task_type TEXT NOT NULL,
	completed_at DATETIME NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	photo_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_routines_instrument ON routines(instrument_id);
CREATE INDEX IF NOT EXISTS idx_occurrences_routine ON occurrences(routine_id);
CREATE INDEX IF NOT EXISTS idx_occurrences_instrument ON occurrences(instrument_id);
CREATE INDEX IF NOT EXISTS idx_occurrences_due_date ON occurrences(due_date);
CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Fresh installs get the modern schema directly and record every
	// migration as applied; existing databases run pending migrations.
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
