package primary

import "context"

// InstrumentService defines the primary port for instrument operations.
type InstrumentService interface {
	// CreateInstrument creates a new instrument.
	CreateInstrument(ctx context.Context, req CreateInstrumentRequest) (*Instrument, error)

	// GetInstrument retrieves an instrument by ID.
	GetInstrument(ctx context.Context, instrumentID string) (*Instrument, error)

	// ListInstruments lists instruments with optional filters.
	ListInstruments(ctx context.Context, filters InstrumentFilters) ([]*Instrument, error)

	// UpdateInstrument updates an instrument's name, category and notes.
	UpdateInstrument(ctx context.Context, req UpdateInstrumentRequest) (*Instrument, error)

	// DeleteInstrument deletes an instrument. Its routines and their
	// occurrences are removed; the completion log is retained.
	DeleteInstrument(ctx context.Context, instrumentID string) error
}

// CreateInstrumentRequest contains parameters for creating an instrument.
// ID is optional; a UUID is minted when it is empty.
type CreateInstrumentRequest struct {
	ID       string
	Name     string
	Category string
	Notes    string
}

// UpdateInstrumentRequest contains parameters for updating an instrument.
type UpdateInstrumentRequest struct {
	InstrumentID string
	Name         string
	Category     string
	Notes        string
}

// InstrumentFilters contains filter options for listing instruments.
type InstrumentFilters struct {
	Category string
}

// Instrument represents an instrument entity at the port boundary.
type Instrument struct {
	ID        string
	Name      string
	Category  string
	Notes     string
	CreatedAt string
	UpdatedAt string
}
