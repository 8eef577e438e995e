// Package app contains the service implementations behind the primary ports.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// InstrumentServiceImpl implements the InstrumentService interface.
type InstrumentServiceImpl struct {
	instrumentRepo secondary.InstrumentRepository
}

// NewInstrumentService creates a new InstrumentService with injected dependencies.
func NewInstrumentService(instrumentRepo secondary.InstrumentRepository) *InstrumentServiceImpl {
	return &InstrumentServiceImpl{
		instrumentRepo: instrumentRepo,
	}
}

// CreateInstrument creates a new instrument.
func (s *InstrumentServiceImpl) CreateInstrument(ctx context.Context, req primary.CreateInstrumentRequest) (*primary.Instrument, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("instrument name is required")
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	category := req.Category
	if category == "" {
		category = "Other"
	}

	record := &secondary.InstrumentRecord{
		ID:       id,
		Name:     req.Name,
		Category: category,
		Notes:    req.Notes,
	}

	if err := s.instrumentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create instrument: %w", err)
	}

	created, err := s.instrumentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created instrument: %w", err)
	}

	return recordToInstrument(created), nil
}

// GetInstrument retrieves an instrument by ID.
func (s *InstrumentServiceImpl) GetInstrument(ctx context.Context, instrumentID string) (*primary.Instrument, error) {
	record, err := s.instrumentRepo.GetByID(ctx, instrumentID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrInstrumentNotFound, instrumentID)
	}
	if err != nil {
		return nil, err
	}
	return recordToInstrument(record), nil
}

// ListInstruments lists instruments with optional filters.
func (s *InstrumentServiceImpl) ListInstruments(ctx context.Context, filters primary.InstrumentFilters) ([]*primary.Instrument, error) {
	records, err := s.instrumentRepo.List(ctx, secondary.InstrumentFilters{Category: filters.Category})
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	instruments := make([]*primary.Instrument, 0, len(records))
	for _, r := range records {
		instruments = append(instruments, recordToInstrument(r))
	}
	return instruments, nil
}

// UpdateInstrument updates an instrument's name, category and notes.
func (s *InstrumentServiceImpl) UpdateInstrument(ctx context.Context, req primary.UpdateInstrumentRequest) (*primary.Instrument, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("instrument name is required")
	}

	record := &secondary.InstrumentRecord{
		ID:       req.InstrumentID,
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
	}

	err := s.instrumentRepo.Update(ctx, record)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrInstrumentNotFound, req.InstrumentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update instrument: %w", err)
	}

	updated, err := s.instrumentRepo.GetByID(ctx, req.InstrumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated instrument: %w", err)
	}
	return recordToInstrument(updated), nil
}

// DeleteInstrument deletes an instrument. Its routines and occurrences
// cascade; the completion log is retained.
func (s *InstrumentServiceImpl) DeleteInstrument(ctx context.Context, instrumentID string) error {
	err := s.instrumentRepo.Delete(ctx, instrumentID)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("%w: %s", primary.ErrInstrumentNotFound, instrumentID)
	}
	return err
}

func recordToInstrument(r *secondary.InstrumentRecord) *primary.Instrument {
	return &primary.Instrument{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
