package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beveridges/practice-app/internal/core/schedule"
	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// OccurrenceServiceImpl implements the OccurrenceService interface.
type OccurrenceServiceImpl struct {
	occurrenceRepo secondary.OccurrenceRepository
	completionRepo secondary.CompletionRepository
	instrumentRepo secondary.InstrumentRepository
	clock          secondary.Clock
}

// NewOccurrenceService creates a new OccurrenceService with injected dependencies.
func NewOccurrenceService(
	occurrenceRepo secondary.OccurrenceRepository,
	completionRepo secondary.CompletionRepository,
	instrumentRepo secondary.InstrumentRepository,
	clock secondary.Clock,
) *OccurrenceServiceImpl {
	return &OccurrenceServiceImpl{
		occurrenceRepo: occurrenceRepo,
		completionRepo: completionRepo,
		instrumentRepo: instrumentRepo,
		clock:          clock,
	}
}

// GetOccurrence retrieves an occurrence by ID.
func (s *OccurrenceServiceImpl) GetOccurrence(ctx context.Context, occurrenceID string) (*primary.Occurrence, error) {
	record, err := s.occurrenceRepo.GetByID(ctx, occurrenceID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrOccurrenceNotFound, occurrenceID)
	}
	if err != nil {
		return nil, err
	}
	return recordToOccurrence(record), nil
}

// ListOccurrences lists occurrences with optional filters.
func (s *OccurrenceServiceImpl) ListOccurrences(ctx context.Context, filters primary.OccurrenceFilters) ([]*primary.Occurrence, error) {
	records, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{
		InstrumentID: filters.InstrumentID,
		TaskType:     filters.TaskType,
		DueFrom:      filters.DueFrom,
		DueTo:        filters.DueTo,
		Completed:    filters.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}

	occurrences := make([]*primary.Occurrence, 0, len(records))
	for _, r := range records {
		occurrences = append(occurrences, recordToOccurrence(r))
	}
	return occurrences, nil
}

// ListToday lists occurrences due today.
func (s *OccurrenceServiceImpl) ListToday(ctx context.Context) ([]*primary.Occurrence, error) {
	today := schedule.FormatDate(s.clock.Now())
	return s.ListOccurrences(ctx, primary.OccurrenceFilters{DueFrom: today, DueTo: today})
}

// ListTomorrow lists occurrences due tomorrow.
func (s *OccurrenceServiceImpl) ListTomorrow(ctx context.Context) ([]*primary.Occurrence, error) {
	tomorrow := schedule.FormatDate(s.clock.Now().AddDate(0, 0, 1))
	return s.ListOccurrences(ctx, primary.OccurrenceFilters{DueFrom: tomorrow, DueTo: tomorrow})
}

// ListOverdue lists pending occurrences due before today.
func (s *OccurrenceServiceImpl) ListOverdue(ctx context.Context) ([]*primary.Occurrence, error) {
	yesterday := schedule.FormatDate(s.clock.Now().AddDate(0, 0, -1))
	pending := false
	return s.ListOccurrences(ctx, primary.OccurrenceFilters{DueTo: yesterday, Completed: &pending})
}

// Complete marks an occurrence done and appends a completion record.
// Re-completing overwrites the occurrence's completion fields and still
// appends a fresh record, so every completion event stays in the log.
func (s *OccurrenceServiceImpl) Complete(ctx context.Context, req primary.CompleteRequest) (*primary.Occurrence, error) {
	record, err := s.occurrenceRepo.GetByID(ctx, req.OccurrenceID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrOccurrenceNotFound, req.OccurrenceID)
	}
	if err != nil {
		return nil, err
	}

	completedAt := s.clock.Now().UTC().Format(time.RFC3339)

	if err := s.occurrenceRepo.UpdateCompletion(ctx, record.ID, true, completedAt, req.Notes, req.PhotoURL); err != nil {
		return nil, fmt.Errorf("failed to complete occurrence: %w", err)
	}

	completion := &secondary.CompletionRecord{
		ID:           uuid.NewString(),
		OccurrenceID: record.ID,
		InstrumentID: record.InstrumentID,
		TaskType:     record.TaskType,
		CompletedAt:  completedAt,
		Notes:        req.Notes,
		PhotoURL:     req.PhotoURL,
	}
	if err := s.completionRepo.Create(ctx, completion); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	updated, err := s.occurrenceRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed occurrence: %w", err)
	}
	return recordToOccurrence(updated), nil
}

// CompleteAll completes every pending occurrence of the instrument due on
// or before today. A failure on one occurrence is collected, not fatal;
// the response reports both sides.
func (s *OccurrenceServiceImpl) CompleteAll(ctx context.Context, instrumentID string) (*primary.CompleteAllResponse, error) {
	_, err := s.instrumentRepo.GetByID(ctx, instrumentID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrInstrumentNotFound, instrumentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to validate instrument: %w", err)
	}

	pending := false
	records, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{
		InstrumentID: instrumentID,
		DueTo:        schedule.FormatDate(s.clock.Now()),
		Completed:    &pending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending occurrences: %w", err)
	}

	response := &primary.CompleteAllResponse{}
	for _, r := range records {
		completed, err := s.Complete(ctx, primary.CompleteRequest{OccurrenceID: r.ID})
		if err != nil {
			response.Failed = append(response.Failed, primary.CompleteFailure{
				OccurrenceID: r.ID,
				Err:          err,
			})
			continue
		}
		response.Completed = append(response.Completed, completed)
	}
	return response, nil
}

func recordToOccurrence(r *secondary.OccurrenceRecord) *primary.Occurrence {
	return &primary.Occurrence{
		ID:           r.ID,
		RoutineID:    r.RoutineID,
		InstrumentID: r.InstrumentID,
		TaskType:     r.TaskType,
		DueDate:      r.DueDate,
		Completed:    r.Completed,
		CompletedAt:  r.CompletedAt,
		Notes:        r.Notes,
		PhotoURL:     r.PhotoURL,
	}
}
