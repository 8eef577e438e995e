package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// fixedClock implements secondary.Clock with a pinned time.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// mockInstrumentRepository implements secondary.InstrumentRepository for testing.
type mockInstrumentRepository struct {
	instruments map[string]*secondary.InstrumentRecord
	createErr   error
	listErr     error
}

func newMockInstrumentRepository() *mockInstrumentRepository {
	return &mockInstrumentRepository{
		instruments: make(map[string]*secondary.InstrumentRecord),
	}
}

func (m *mockInstrumentRepository) Create(ctx context.Context, instrument *secondary.InstrumentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *instrument
	if stored.CreatedAt == "" {
		stored.CreatedAt = "2025-01-01T00:00:00Z"
		stored.UpdatedAt = stored.CreatedAt
	}
	m.instruments[instrument.ID] = &stored
	return nil
}

func (m *mockInstrumentRepository) GetByID(ctx context.Context, id string) (*secondary.InstrumentRecord, error) {
	if instrument, ok := m.instruments[id]; ok {
		return instrument, nil
	}
	return nil, fmt.Errorf("instrument %s: %w", id, secondary.ErrNotFound)
}

func (m *mockInstrumentRepository) List(ctx context.Context, filters secondary.InstrumentFilters) ([]*secondary.InstrumentRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.InstrumentRecord
	for _, instrument := range m.instruments {
		if filters.Category != "" && instrument.Category != filters.Category {
			continue
		}
		result = append(result, instrument)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockInstrumentRepository) Update(ctx context.Context, instrument *secondary.InstrumentRecord) error {
	existing, ok := m.instruments[instrument.ID]
	if !ok {
		return fmt.Errorf("instrument %s: %w", instrument.ID, secondary.ErrNotFound)
	}
	existing.Name = instrument.Name
	existing.Category = instrument.Category
	existing.Notes = instrument.Notes
	return nil
}

func (m *mockInstrumentRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.instruments[id]; !ok {
		return fmt.Errorf("instrument %s: %w", id, secondary.ErrNotFound)
	}
	delete(m.instruments, id)
	return nil
}

// mockRoutineRepository implements secondary.RoutineRepository for testing.
type mockRoutineRepository struct {
	routines map[string]*secondary.RoutineRecord
	order    []string
}

func newMockRoutineRepository() *mockRoutineRepository {
	return &mockRoutineRepository{
		routines: make(map[string]*secondary.RoutineRecord),
	}
}

func (m *mockRoutineRepository) Create(ctx context.Context, routine *secondary.RoutineRecord) error {
	stored := *routine
	if stored.CreatedAt == "" {
		stored.CreatedAt = "2025-01-01T00:00:00Z"
	}
	m.routines[routine.ID] = &stored
	m.order = append(m.order, routine.ID)
	return nil
}

func (m *mockRoutineRepository) GetByID(ctx context.Context, id string) (*secondary.RoutineRecord, error) {
	if routine, ok := m.routines[id]; ok {
		return routine, nil
	}
	return nil, fmt.Errorf("routine %s: %w", id, secondary.ErrNotFound)
}

func (m *mockRoutineRepository) List(ctx context.Context, filters secondary.RoutineFilters) ([]*secondary.RoutineRecord, error) {
	var result []*secondary.RoutineRecord
	for _, id := range m.order {
		routine, ok := m.routines[id]
		if !ok {
			continue
		}
		if filters.InstrumentID != "" && routine.InstrumentID != filters.InstrumentID {
			continue
		}
		result = append(result, routine)
	}
	return result, nil
}

func (m *mockRoutineRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.routines[id]; !ok {
		return fmt.Errorf("routine %s: %w", id, secondary.ErrNotFound)
	}
	delete(m.routines, id)
	return nil
}

// mockOccurrenceRepository implements secondary.OccurrenceRepository for
// testing. Insert mirrors the adapter's INSERT OR IGNORE semantics.
type mockOccurrenceRepository struct {
	occurrences []*secondary.OccurrenceRecord
	insertErr   error
	updateErr   map[string]error // occurrence ID -> error
}

func newMockOccurrenceRepository() *mockOccurrenceRepository {
	return &mockOccurrenceRepository{
		updateErr: make(map[string]error),
	}
}

func (m *mockOccurrenceRepository) Insert(ctx context.Context, occurrences []*secondary.OccurrenceRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, o := range occurrences {
		if m.find(o.RoutineID, o.DueDate) != nil {
			continue
		}
		stored := *o
		m.occurrences = append(m.occurrences, &stored)
	}
	return nil
}

func (m *mockOccurrenceRepository) find(routineID, dueDate string) *secondary.OccurrenceRecord {
	for _, o := range m.occurrences {
		if o.RoutineID == routineID && o.DueDate == dueDate {
			return o
		}
	}
	return nil
}

func (m *mockOccurrenceRepository) GetByID(ctx context.Context, id string) (*secondary.OccurrenceRecord, error) {
	for _, o := range m.occurrences {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("occurrence %s: %w", id, secondary.ErrNotFound)
}

func (m *mockOccurrenceRepository) List(ctx context.Context, filters secondary.OccurrenceFilters) ([]*secondary.OccurrenceRecord, error) {
	var result []*secondary.OccurrenceRecord
	for _, o := range m.occurrences {
		if filters.RoutineID != "" && o.RoutineID != filters.RoutineID {
			continue
		}
		if filters.InstrumentID != "" && o.InstrumentID != filters.InstrumentID {
			continue
		}
		if filters.TaskType != "" && o.TaskType != filters.TaskType {
			continue
		}
		if filters.DueFrom != "" && o.DueDate < filters.DueFrom {
			continue
		}
		if filters.DueTo != "" && o.DueDate > filters.DueTo {
			continue
		}
		if filters.Completed != nil && o.Completed != *filters.Completed {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate < result[j].DueDate })
	return result, nil
}

func (m *mockOccurrenceRepository) ListDueDates(ctx context.Context, routineID string) ([]string, error) {
	var dates []string
	for _, o := range m.occurrences {
		if o.RoutineID == routineID {
			dates = append(dates, o.DueDate)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (m *mockOccurrenceRepository) UpdateCompletion(ctx context.Context, id string, completed bool, completedAt, notes, photoURL string) error {
	if err := m.updateErr[id]; err != nil {
		return err
	}
	for _, o := range m.occurrences {
		if o.ID == id {
			o.Completed = completed
			o.CompletedAt = completedAt
			o.Notes = notes
			o.PhotoURL = photoURL
			return nil
		}
	}
	return fmt.Errorf("occurrence %s: %w", id, secondary.ErrNotFound)
}

// mockCompletionRepository implements secondary.CompletionRepository for testing.
type mockCompletionRepository struct {
	completions []*secondary.CompletionRecord
	createErr   error
}

func newMockCompletionRepository() *mockCompletionRepository {
	return &mockCompletionRepository{}
}

func (m *mockCompletionRepository) Create(ctx context.Context, completion *secondary.CompletionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *completion
	m.completions = append(m.completions, &stored)
	return nil
}

func (m *mockCompletionRepository) List(ctx context.Context) ([]*secondary.CompletionRecord, error) {
	result := make([]*secondary.CompletionRecord, len(m.completions))
	copy(result, m.completions)
	sort.Slice(result, func(i, j int) bool { return result[i].CompletedAt > result[j].CompletedAt })
	return result, nil
}
