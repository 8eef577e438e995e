package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// CompletionRepository implements secondary.CompletionRepository with
// SQLite. The completions table is append-only and carries no foreign
// keys, so the log survives cascade deletion of its occurrences.
type CompletionRepository struct {
	db *sql.DB
}

// NewCompletionRepository creates a new SQLite completion repository.
func NewCompletionRepository(db *sql.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Create appends a completion record.
func (r *CompletionRepository) Create(ctx context.Context, completion *secondary.CompletionRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO completions (id, occurrence_id, instrument_id, task_type, completed_at, notes, photo_url) VALUES (?, ?, ?, ?, ?, ?, ?)",
		completion.ID, completion.OccurrenceID, completion.InstrumentID, completion.TaskType,
		completion.CompletedAt, completion.Notes, completion.PhotoURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create completion record: %w", err)
	}

	return nil
}

// List retrieves the full completion log, newest first.
func (r *CompletionRepository) List(ctx context.Context) ([]*secondary.CompletionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, occurrence_id, instrument_id, task_type, completed_at, notes, photo_url FROM completions ORDER BY completed_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list completion records: %w", err)
	}
	defer rows.Close()

	var completions []*secondary.CompletionRecord
	for rows.Next() {
		var (
			record      secondary.CompletionRecord
			completedAt time.Time
		)
		err := rows.Scan(&record.ID, &record.OccurrenceID, &record.InstrumentID,
			&record.TaskType, &completedAt, &record.Notes, &record.PhotoURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completion record: %w", err)
		}
		record.CompletedAt = completedAt.Format(time.RFC3339)
		completions = append(completions, &record)
	}

	return completions, rows.Err()
}
