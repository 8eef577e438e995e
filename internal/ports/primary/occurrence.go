package primary

import "context"

// OccurrenceService defines the primary port for completion tracking and
// occurrence queries.
type OccurrenceService interface {
	// GetOccurrence retrieves an occurrence by ID.
	GetOccurrence(ctx context.Context, occurrenceID string) (*Occurrence, error)

	// ListOccurrences lists occurrences with optional filters, ordered
	// by due date.
	ListOccurrences(ctx context.Context, filters OccurrenceFilters) ([]*Occurrence, error)

	// ListToday lists occurrences due today.
	ListToday(ctx context.Context) ([]*Occurrence, error)

	// ListTomorrow lists occurrences due tomorrow.
	ListTomorrow(ctx context.Context) ([]*Occurrence, error)

	// ListOverdue lists pending occurrences due before today.
	ListOverdue(ctx context.Context) ([]*Occurrence, error)

	// Complete marks an occurrence done and appends a completion record.
	// Completing an already-completed occurrence overwrites its
	// completion fields and still appends a fresh record.
	Complete(ctx context.Context, req CompleteRequest) (*Occurrence, error)

	// CompleteAll completes every pending occurrence of the instrument
	// due on or before today. A failure on one occurrence does not abort
	// the rest.
	CompleteAll(ctx context.Context, instrumentID string) (*CompleteAllResponse, error)
}

// CompleteRequest contains parameters for completing an occurrence.
type CompleteRequest struct {
	OccurrenceID string
	Notes        string
	PhotoURL     string
}

// CompleteAllResponse is the aggregate outcome of a batch completion.
// Completed holds the occurrences that were marked done this call;
// Failed holds one entry per occurrence that could not be.
type CompleteAllResponse struct {
	Completed []*Occurrence
	Failed    []CompleteFailure
}

// CompleteFailure records one occurrence that failed during CompleteAll.
type CompleteFailure struct {
	OccurrenceID string
	Err          error
}

// OccurrenceFilters contains filter options for listing occurrences.
// Completed is tri-state: nil matches both.
type OccurrenceFilters struct {
	InstrumentID string
	TaskType     string
	DueFrom      string
	DueTo        string
	Completed    *bool
}

// Occurrence represents an occurrence entity at the port boundary.
// InstrumentID and TaskType are frozen copies taken from the routine at
// generation time.
type Occurrence struct {
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
