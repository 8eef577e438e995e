// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a row does not exist.
// Adapters wrap it with the entity kind and id; services translate it
// into the primary error taxonomy.
var ErrNotFound = errors.New("not found")

// InstrumentRepository defines the secondary port for instrument persistence.
type InstrumentRepository interface {
	// Create persists a new instrument.
	Create(ctx context.Context, instrument *InstrumentRecord) error

	// GetByID retrieves an instrument by its ID.
	GetByID(ctx context.Context, id string) (*InstrumentRecord, error)

	// List retrieves instruments matching the given filters.
	List(ctx context.Context, filters InstrumentFilters) ([]*InstrumentRecord, error)

	// Update updates an existing instrument.
	Update(ctx context.Context, instrument *InstrumentRecord) error

	// Delete removes an instrument. Routines and occurrences cascade;
	// completion records are retained.
	Delete(ctx context.Context, id string) error
}

// InstrumentRecord represents an instrument as stored in persistence.
type InstrumentRecord struct {
	ID        string
	Name      string
	Category  string
	Notes     string
	CreatedAt string
	UpdatedAt string
}

// InstrumentFilters contains filter options for querying instruments.
type InstrumentFilters struct {
	Category string
}

// RoutineRepository defines the secondary port for routine persistence.
type RoutineRepository interface {
	// Create persists a new routine.
	Create(ctx context.Context, routine *RoutineRecord) error

	// GetByID retrieves a routine by its ID.
	GetByID(ctx context.Context, id string) (*RoutineRecord, error)

	// List retrieves routines matching the given filters.
	List(ctx context.Context, filters RoutineFilters) ([]*RoutineRecord, error)

	// Delete removes a routine. Its occurrences cascade; completion
	// records are retained.
	Delete(ctx context.Context, id string) error
}

// RoutineRecord represents a routine as stored in persistence.
type RoutineRecord struct {
	ID           string
	InstrumentID string
	TaskType     string
	Frequency    string
	IntervalDays int // Only meaningful when Frequency is "days"
	StartDate    string
	CreatedAt    string
}

// RoutineFilters contains filter options for querying routines.
type RoutineFilters struct {
	InstrumentID string
}

// OccurrenceRepository defines the secondary port for occurrence persistence.
type OccurrenceRepository interface {
	// Insert persists the given occurrences. Rows whose (routine_id,
	// due_date) pair already exists are silently skipped, so two
	// concurrent generation calls for one routine cannot produce
	// duplicates.
	Insert(ctx context.Context, occurrences []*OccurrenceRecord) error

	// GetByID retrieves an occurrence by its ID.
	GetByID(ctx context.Context, id string) (*OccurrenceRecord, error)

	// List retrieves occurrences matching the given filters, ordered by
	// due date.
	List(ctx context.Context, filters OccurrenceFilters) ([]*OccurrenceRecord, error)

	// ListDueDates returns the due dates already materialized for a
	// routine, in ascending order.
	ListDueDates(ctx context.Context, routineID string) ([]string, error)

	// UpdateCompletion overwrites an occurrence's completion fields.
	UpdateCompletion(ctx context.Context, id string, completed bool, completedAt, notes, photoURL string) error
}

// OccurrenceRecord represents an occurrence as stored in persistence.
// InstrumentID and TaskType are copied from the routine at generation
// time and never re-synced.
type OccurrenceRecord struct {
	ID           string
	RoutineID    string
	InstrumentID string
	TaskType     string
	DueDate      string
	Completed    bool
	CompletedAt  string
	Notes        string
	PhotoURL     string
}

// OccurrenceFilters contains filter options for querying occurrences.
// Completed is tri-state: nil matches both.
type OccurrenceFilters struct {
	RoutineID    string
	InstrumentID string
	TaskType     string
	DueFrom      string
	DueTo        string
	Completed    *bool
}

// CompletionRepository defines the secondary port for the completion log.
// The log is append-only and is never cascade-deleted.
type CompletionRepository interface {
	// Create appends a completion record.
	Create(ctx context.Context, completion *CompletionRecord) error

	// List retrieves completion records, newest first.
	List(ctx context.Context) ([]*CompletionRecord, error)
}

// CompletionRecord represents one completion event as stored in
// persistence. OccurrenceID is a plain reference, not a foreign key, so
// the record survives cascade deletion of its occurrence.
type CompletionRecord struct {
	ID           string
	OccurrenceID string
	InstrumentID string
	TaskType     string
	CompletedAt  string
	Notes        string
	PhotoURL     string
}
