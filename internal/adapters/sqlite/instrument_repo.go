// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// InstrumentRepository implements secondary.InstrumentRepository with SQLite.
type InstrumentRepository struct {
	db *sql.DB
}

// NewInstrumentRepository creates a new SQLite instrument repository.
func NewInstrumentRepository(db *sql.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

// Create persists a new instrument.
func (r *InstrumentRepository) Create(ctx context.Context, instrument *secondary.InstrumentRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO instruments (id, name, category, notes) VALUES (?, ?, ?, ?)",
		instrument.ID, instrument.Name, instrument.Category, instrument.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create instrument: %w", err)
	}

	return nil
}

// GetByID retrieves an instrument by its ID.
func (r *InstrumentRepository) GetByID(ctx context.Context, id string) (*secondary.InstrumentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, category, notes, created_at, updated_at FROM instruments WHERE id = ?",
		id,
	)

	record, err := scanInstrument(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("instrument %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}

	return record, nil
}

// List retrieves instruments ordered by name.
func (r *InstrumentRepository) List(ctx context.Context, filters secondary.InstrumentFilters) ([]*secondary.InstrumentRecord, error) {
	query := "SELECT id, name, category, notes, created_at, updated_at FROM instruments"
	var args []interface{}
	if filters.Category != "" {
		query += " WHERE category = ?"
		args = append(args, filters.Category)
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	defer rows.Close()

	var instruments []*secondary.InstrumentRecord
	for rows.Next() {
		record, err := scanInstrument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instrument: %w", err)
		}
		instruments = append(instruments, record)
	}

	return instruments, rows.Err()
}

// Update updates an instrument's name, category and notes.
func (r *InstrumentRepository) Update(ctx context.Context, instrument *secondary.InstrumentRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE instruments SET name = ?, category = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		instrument.Name, instrument.Category, instrument.Notes, instrument.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update instrument: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("instrument %s: %w", instrument.ID, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes an instrument. Routines and their occurrences cascade
// via foreign keys; the completion log is untouched.
func (r *InstrumentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM instruments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete instrument: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("instrument %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

func scanInstrument(row scanner) (*secondary.InstrumentRecord, error) {
	var (
		record    secondary.InstrumentRecord
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&record.ID, &record.Name, &record.Category, &record.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &record, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}
