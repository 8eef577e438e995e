package primary

import "context"

// RoutineService defines the primary port for routine operations and
// occurrence generation.
type RoutineService interface {
	// CreateRoutine validates and persists a routine, then immediately
	// materializes its occurrences through the generation horizon.
	CreateRoutine(ctx context.Context, req CreateRoutineRequest) (*CreateRoutineResponse, error)

	// GetRoutine retrieves a routine by ID.
	GetRoutine(ctx context.Context, routineID string) (*Routine, error)

	// ListRoutines lists routines, optionally for one instrument.
	ListRoutines(ctx context.Context, instrumentID string) ([]*Routine, error)

	// Generate extends a routine's materialized occurrences through the
	// horizon. Idempotent; returns only the newly created occurrences.
	Generate(ctx context.Context, routineID string) ([]*Occurrence, error)

	// GenerateAll runs Generate over every routine and returns the total
	// number of occurrences created.
	GenerateAll(ctx context.Context) (int, error)

	// DeleteRoutine deletes a routine and its occurrences. The
	// completion log is retained.
	DeleteRoutine(ctx context.Context, routineID string) error
}

// CreateRoutineRequest contains parameters for creating a routine.
// ID is optional; a UUID is minted when it is empty. Frequency is one of
// "days", "weekly" or "monthly"; IntervalDays applies to "days" only.
type CreateRoutineRequest struct {
	ID           string
	InstrumentID string
	TaskType     string
	Frequency    string
	IntervalDays int
	StartDate    string
}

// CreateRoutineResponse contains the result of creating a routine.
type CreateRoutineResponse struct {
	Routine   *Routine
	Generated []*Occurrence
}

// Routine represents a routine entity at the port boundary.
type Routine struct {
	ID           string
	InstrumentID string
	TaskType     string
	Frequency    string
	IntervalDays int
	StartDate    string
	CreatedAt    string
}
