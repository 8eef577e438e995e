package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// RoutineRepository implements secondary.RoutineRepository with SQLite.
type RoutineRepository struct {
	db *sql.DB
}

// NewRoutineRepository creates a new SQLite routine repository.
func NewRoutineRepository(db *sql.DB) *RoutineRepository {
	return &RoutineRepository{db: db}
}

// Create persists a new routine.
func (r *RoutineRepository) Create(ctx context.Context, routine *secondary.RoutineRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO routines (id, instrument_id, task_type, frequency, interval_days, start_date) VALUES (?, ?, ?, ?, ?, ?)",
		routine.ID, routine.InstrumentID, routine.TaskType, routine.Frequency, routine.IntervalDays, routine.StartDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}

	return nil
}

// GetByID retrieves a routine by its ID.
func (r *RoutineRepository) GetByID(ctx context.Context, id string) (*secondary.RoutineRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, instrument_id, task_type, frequency, interval_days, start_date, created_at FROM routines WHERE id = ?",
		id,
	)

	record, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("routine %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}

	return record, nil
}

// List retrieves routines ordered by creation time.
func (r *RoutineRepository) List(ctx context.Context, filters secondary.RoutineFilters) ([]*secondary.RoutineRecord, error) {
	query := "SELECT id, instrument_id, task_type, frequency, interval_days, start_date, created_at FROM routines"
	var args []interface{}
	if filters.InstrumentID != "" {
		query += " WHERE instrument_id = ?"
		args = append(args, filters.InstrumentID)
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	defer rows.Close()

	var routines []*secondary.RoutineRecord
	for rows.Next() {
		record, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		routines = append(routines, record)
	}

	return routines, rows.Err()
}

// Delete removes a routine. Its occurrences cascade via the foreign key;
// the completion log is untouched.
func (r *RoutineRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("routine %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

func scanRoutine(row scanner) (*secondary.RoutineRecord, error) {
	var (
		record    secondary.RoutineRecord
		createdAt time.Time
	)

	err := row.Scan(&record.ID, &record.InstrumentID, &record.TaskType, &record.Frequency, &record.IntervalDays, &record.StartDate, &createdAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return &record, nil
}
