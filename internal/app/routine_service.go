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

// RoutineServiceImpl implements the RoutineService interface.
type RoutineServiceImpl struct {
	routineRepo    secondary.RoutineRepository
	instrumentRepo secondary.InstrumentRepository
	occurrenceRepo secondary.OccurrenceRepository
	clock          secondary.Clock
	horizonDays    int
}

// NewRoutineService creates a new RoutineService with injected dependencies.
// horizonDays bounds how far ahead occurrences are materialized.
func NewRoutineService(
	routineRepo secondary.RoutineRepository,
	instrumentRepo secondary.InstrumentRepository,
	occurrenceRepo secondary.OccurrenceRepository,
	clock secondary.Clock,
	horizonDays int,
) *RoutineServiceImpl {
	return &RoutineServiceImpl{
		routineRepo:    routineRepo,
		instrumentRepo: instrumentRepo,
		occurrenceRepo: occurrenceRepo,
		clock:          clock,
		horizonDays:    horizonDays,
	}
}

// CreateRoutine validates and persists a routine, then immediately
// materializes its occurrences through the horizon. A start date in the
// past yields the overdue backlog plus the forward window.
func (s *RoutineServiceImpl) CreateRoutine(ctx context.Context, req primary.CreateRoutineRequest) (*primary.CreateRoutineResponse, error) {
	rule, err := ruleFromRequest(req.Frequency, req.IntervalDays, req.StartDate)
	if err != nil {
		return nil, err
	}
	if req.TaskType == "" {
		return nil, fmt.Errorf("task type is required")
	}

	_, err = s.instrumentRepo.GetByID(ctx, req.InstrumentID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrInstrumentNotFound, req.InstrumentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to validate instrument: %w", err)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	record := &secondary.RoutineRecord{
		ID:           id,
		InstrumentID: req.InstrumentID,
		TaskType:     req.TaskType,
		Frequency:    string(rule.Frequency),
		IntervalDays: rule.IntervalDays,
		StartDate:    schedule.FormatDate(rule.Start),
	}

	if err := s.routineRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}

	created, err := s.routineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created routine: %w", err)
	}

	generated, err := s.Generate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate occurrences: %w", err)
	}

	return &primary.CreateRoutineResponse{
		Routine:   recordToRoutine(created),
		Generated: generated,
	}, nil
}

// GetRoutine retrieves a routine by ID.
func (s *RoutineServiceImpl) GetRoutine(ctx context.Context, routineID string) (*primary.Routine, error) {
	record, err := s.routineRepo.GetByID(ctx, routineID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrRoutineNotFound, routineID)
	}
	if err != nil {
		return nil, err
	}
	return recordToRoutine(record), nil
}

// ListRoutines lists routines, optionally for one instrument.
func (s *RoutineServiceImpl) ListRoutines(ctx context.Context, instrumentID string) ([]*primary.Routine, error) {
	records, err := s.routineRepo.List(ctx, secondary.RoutineFilters{InstrumentID: instrumentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	routines := make([]*primary.Routine, 0, len(records))
	for _, r := range records {
		routines = append(routines, recordToRoutine(r))
	}
	return routines, nil
}

// Generate extends a routine's materialized occurrences through the
// horizon. The diff against already-persisted due dates plus the
// uniqueness constraint at the storage layer make repeated and concurrent
// calls safe; only the newly created occurrences are returned.
func (s *RoutineServiceImpl) Generate(ctx context.Context, routineID string) ([]*primary.Occurrence, error) {
	record, err := s.routineRepo.GetByID(ctx, routineID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", primary.ErrRoutineNotFound, routineID)
	}
	if err != nil {
		return nil, err
	}

	rule, err := ruleFromRequest(record.Frequency, record.IntervalDays, record.StartDate)
	if err != nil {
		return nil, fmt.Errorf("routine %s has an invalid rule: %w", routineID, err)
	}

	existingDates, err := s.occurrenceRepo.ListDueDates(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing due dates: %w", err)
	}
	existing := make([]time.Time, 0, len(existingDates))
	for _, d := range existingDates {
		parsed, err := schedule.ParseDate(d)
		if err != nil {
			return nil, fmt.Errorf("stored due date is invalid: %w", err)
		}
		existing = append(existing, parsed)
	}

	horizon := schedule.DateOf(s.clock.Now()).AddDate(0, 0, s.horizonDays)
	missing, err := rule.Generate(horizon, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to expand routine %s: %w", routineID, err)
	}

	records := make([]*secondary.OccurrenceRecord, 0, len(missing))
	for _, due := range missing {
		records = append(records, &secondary.OccurrenceRecord{
			ID:           uuid.NewString(),
			RoutineID:    record.ID,
			InstrumentID: record.InstrumentID,
			TaskType:     record.TaskType,
			DueDate:      schedule.FormatDate(due),
		})
	}

	if err := s.occurrenceRepo.Insert(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to insert occurrences: %w", err)
	}

	occurrences := make([]*primary.Occurrence, 0, len(records))
	for _, r := range records {
		occurrences = append(occurrences, recordToOccurrence(r))
	}
	return occurrences, nil
}

// GenerateAll runs Generate over every routine.
func (s *RoutineServiceImpl) GenerateAll(ctx context.Context) (int, error) {
	routines, err := s.routineRepo.List(ctx, secondary.RoutineFilters{})
	if err != nil {
		return 0, fmt.Errorf("failed to list routines: %w", err)
	}

	total := 0
	for _, r := range routines {
		generated, err := s.Generate(ctx, r.ID)
		if err != nil {
			return total, fmt.Errorf("failed to generate for routine %s: %w", r.ID, err)
		}
		total += len(generated)
	}
	return total, nil
}

// DeleteRoutine deletes a routine and its occurrences.
func (s *RoutineServiceImpl) DeleteRoutine(ctx context.Context, routineID string) error {
	err := s.routineRepo.Delete(ctx, routineID)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("%w: %s", primary.ErrRoutineNotFound, routineID)
	}
	return err
}

// ruleFromRequest builds and validates a schedule rule from wire fields.
func ruleFromRequest(frequency string, intervalDays int, startDate string) (schedule.Routine, error) {
	start, err := schedule.ParseDate(startDate)
	if err != nil {
		return schedule.Routine{}, err
	}
	rule := schedule.Routine{
		Frequency:    schedule.Frequency(frequency),
		IntervalDays: intervalDays,
		Start:        start,
	}
	if err := rule.Validate(); err != nil {
		return schedule.Routine{}, err
	}
	return rule, nil
}

func recordToRoutine(r *secondary.RoutineRecord) *primary.Routine {
	return &primary.Routine{
		ID:           r.ID,
		InstrumentID: r.InstrumentID,
		TaskType:     r.TaskType,
		Frequency:    r.Frequency,
		IntervalDays: r.IntervalDays,
		StartDate:    r.StartDate,
		CreatedAt:    r.CreatedAt,
	}
}
