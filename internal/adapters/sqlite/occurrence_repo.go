package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// OccurrenceRepository implements secondary.OccurrenceRepository with SQLite.
type OccurrenceRepository struct {
	db *sql.DB
}

// NewOccurrenceRepository creates a new SQLite occurrence repository.
func NewOccurrenceRepository(db *sql.DB) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

// Insert persists the given occurrences in one transaction. INSERT OR
// IGNORE against UNIQUE(routine_id, due_date) makes the write safe under
// concurrent generation for the same routine.
func (r *OccurrenceRepository) Insert(ctx context.Context, occurrences []*secondary.OccurrenceRecord) error {
	if len(occurrences) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO occurrences (id, routine_id, instrument_id, task_type, due_date, completed) VALUES (?, ?, ?, ?, ?, 0)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range occurrences {
		if _, err := stmt.ExecContext(ctx, o.ID, o.RoutineID, o.InstrumentID, o.TaskType, o.DueDate); err != nil {
			return fmt.Errorf("failed to insert occurrence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit occurrences: %w", err)
	}

	return nil
}

// GetByID retrieves an occurrence by its ID.
func (r *OccurrenceRepository) GetByID(ctx context.Context, id string) (*secondary.OccurrenceRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, routine_id, instrument_id, task_type, due_date, completed, completed_at, notes, photo_url FROM occurrences WHERE id = ?",
		id,
	)

	record, err := scanOccurrence(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("occurrence %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get occurrence: %w", err)
	}

	return record, nil
}

// List retrieves occurrences matching the filters, ordered by due date.
func (r *OccurrenceRepository) List(ctx context.Context, filters secondary.OccurrenceFilters) ([]*secondary.OccurrenceRecord, error) {
	query := "SELECT id, routine_id, instrument_id, task_type, due_date, completed, completed_at, notes, photo_url FROM occurrences WHERE 1=1"
	var args []interface{}

	if filters.RoutineID != "" {
		query += " AND routine_id = ?"
		args = append(args, filters.RoutineID)
	}
	if filters.InstrumentID != "" {
		query += " AND instrument_id = ?"
		args = append(args, filters.InstrumentID)
	}
	if filters.TaskType != "" {
		query += " AND task_type = ?"
		args = append(args, filters.TaskType)
	}
	if filters.DueFrom != "" {
		query += " AND due_date >= ?"
		args = append(args, filters.DueFrom)
	}
	if filters.DueTo != "" {
		query += " AND due_date <= ?"
		args = append(args, filters.DueTo)
	}
	if filters.Completed != nil {
		query += " AND completed = ?"
		args = append(args, *filters.Completed)
	}
	query += " ORDER BY due_date ASC, task_type ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	defer rows.Close()

	var occurrences []*secondary.OccurrenceRecord
	for rows.Next() {
		record, err := scanOccurrence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan occurrence: %w", err)
		}
		occurrences = append(occurrences, record)
	}

	return occurrences, rows.Err()
}

// ListDueDates returns the due dates already materialized for a routine.
func (r *OccurrenceRepository) ListDueDates(ctx context.Context, routineID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT due_date FROM occurrences WHERE routine_id = ? ORDER BY due_date ASC",
		routineID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list due dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan due date: %w", err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// UpdateCompletion overwrites an occurrence's completion fields.
func (r *OccurrenceRepository) UpdateCompletion(ctx context.Context, id string, completed bool, completedAt, notes, photoURL string) error {
	var at sql.NullString
	if completedAt != "" {
		at = sql.NullString{String: completedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE occurrences SET completed = ?, completed_at = ?, notes = ?, photo_url = ? WHERE id = ?",
		completed, at, notes, photoURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update occurrence: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("occurrence %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

func scanOccurrence(row scanner) (*secondary.OccurrenceRecord, error) {
	var (
		record      secondary.OccurrenceRecord
		completedAt sql.NullTime
	)

	err := row.Scan(&record.ID, &record.RoutineID, &record.InstrumentID, &record.TaskType,
		&record.DueDate, &record.Completed, &completedAt, &record.Notes, &record.PhotoURL)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return &record, nil
}
