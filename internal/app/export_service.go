package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	instrumentRepo secondary.InstrumentRepository
	routineRepo    secondary.RoutineRepository
	occurrenceRepo secondary.OccurrenceRepository
	completionRepo secondary.CompletionRepository
	clock          secondary.Clock
}

// NewExportService creates a new ExportService with injected dependencies.
func NewExportService(
	instrumentRepo secondary.InstrumentRepository,
	routineRepo secondary.RoutineRepository,
	occurrenceRepo secondary.OccurrenceRepository,
	completionRepo secondary.CompletionRepository,
	clock secondary.Clock,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		instrumentRepo: instrumentRepo,
		routineRepo:    routineRepo,
		occurrenceRepo: occurrenceRepo,
		completionRepo: completionRepo,
		clock:          clock,
	}
}

// ICS renders the occurrences matching the filters as an iCalendar
// document with one all-day event per occurrence.
func (s *ExportServiceImpl) ICS(ctx context.Context, filters primary.OccurrenceFilters) (string, error) {
	occurrences, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{
		InstrumentID: filters.InstrumentID,
		TaskType:     filters.TaskType,
		DueFrom:      filters.DueFrom,
		DueTo:        filters.DueTo,
		Completed:    filters.Completed,
	})
	if err != nil {
		return "", fmt.Errorf("failed to list occurrences: %w", err)
	}

	names, err := s.instrumentNames(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//Practice App//EN\n")
	for _, o := range occurrences {
		name := names[o.InstrumentID]
		if name == "" {
			name = "Unknown"
		}
		b.WriteString("BEGIN:VEVENT\n")
		fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\n", strings.ReplaceAll(o.DueDate, "-", ""))
		fmt.Fprintf(&b, "SUMMARY:%s - %s\n", o.TaskType, name)
		fmt.Fprintf(&b, "DESCRIPTION:Care task for %s\n", name)
		b.WriteString("END:VEVENT\n")
	}
	b.WriteString("END:VCALENDAR\n")
	return b.String(), nil
}

// CSV renders the full occurrence history, ordered by due date.
func (s *ExportServiceImpl) CSV(ctx context.Context) (string, error) {
	occurrences, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{})
	if err != nil {
		return "", fmt.Errorf("failed to list occurrences: %w", err)
	}

	names, err := s.instrumentNames(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"Date", "Instrument", "Task Type", "Completed", "Completed At", "Notes"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, o := range occurrences {
		name := names[o.InstrumentID]
		if name == "" {
			name = "Unknown"
		}
		completed := "No"
		if o.Completed {
			completed = "Yes"
		}
		row := []string{o.DueDate, name, o.TaskType, completed, o.CompletedAt, o.Notes}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return b.String(), nil
}

// backup is the JSON export envelope.
type backup struct {
	ExportDate  string             `json:"export_date"`
	Instruments []backupInstrument `json:"instruments"`
	Routines    []backupRoutine    `json:"routines"`
	Occurrences []backupOccurrence `json:"occurrences"`
	Completions []backupCompletion `json:"completions"`
}

type backupInstrument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type backupRoutine struct {
	ID           string `json:"id"`
	InstrumentID string `json:"instrument_id"`
	TaskType     string `json:"task_type"`
	Frequency    string `json:"frequency"`
	IntervalDays int    `json:"interval_days,omitempty"`
	StartDate    string `json:"start_date"`
	CreatedAt    string `json:"created_at"`
}

type backupOccurrence struct {
	ID           string `json:"id"`
	RoutineID    string `json:"routine_id"`
	InstrumentID string `json:"instrument_id"`
	TaskType     string `json:"task_type"`
	DueDate      string `json:"due_date"`
	Completed    bool   `json:"completed"`
	CompletedAt  string `json:"completed_at,omitempty"`
	Notes        string `json:"notes,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

type backupCompletion struct {
	ID           string `json:"id"`
	OccurrenceID string `json:"occurrence_id"`
	InstrumentID string `json:"instrument_id"`
	TaskType     string `json:"task_type"`
	CompletedAt  string `json:"completed_at"`
	Notes        string `json:"notes,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// JSON renders a full backup of every table as indented JSON.
func (s *ExportServiceImpl) JSON(ctx context.Context) (string, error) {
	instruments, err := s.instrumentRepo.List(ctx, secondary.InstrumentFilters{})
	if err != nil {
		return "", fmt.Errorf("failed to list instruments: %w", err)
	}
	routines, err := s.routineRepo.List(ctx, secondary.RoutineFilters{})
	if err != nil {
		return "", fmt.Errorf("failed to list routines: %w", err)
	}
	occurrences, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{})
	if err != nil {
		return "", fmt.Errorf("failed to list occurrences: %w", err)
	}
	completions, err := s.completionRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list completions: %w", err)
	}

	payload := backup{
		ExportDate:  s.clock.Now().UTC().Format(time.RFC3339),
		Instruments: make([]backupInstrument, 0, len(instruments)),
		Routines:    make([]backupRoutine, 0, len(routines)),
		Occurrences: make([]backupOccurrence, 0, len(occurrences)),
		Completions: make([]backupCompletion, 0, len(completions)),
	}
	for _, i := range instruments {
		payload.Instruments = append(payload.Instruments, backupInstrument{
			ID: i.ID, Name: i.Name, Category: i.Category, Notes: i.Notes,
			CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt,
		})
	}
	for _, r := range routines {
		payload.Routines = append(payload.Routines, backupRoutine{
			ID: r.ID, InstrumentID: r.InstrumentID, TaskType: r.TaskType,
			Frequency: r.Frequency, IntervalDays: r.IntervalDays,
			StartDate: r.StartDate, CreatedAt: r.CreatedAt,
		})
	}
	for _, o := range occurrences {
		payload.Occurrences = append(payload.Occurrences, backupOccurrence{
			ID: o.ID, RoutineID: o.RoutineID, InstrumentID: o.InstrumentID,
			TaskType: o.TaskType, DueDate: o.DueDate, Completed: o.Completed,
			CompletedAt: o.CompletedAt, Notes: o.Notes, PhotoURL: o.PhotoURL,
		})
	}
	for _, c := range completions {
		payload.Completions = append(payload.Completions, backupCompletion{
			ID: c.ID, OccurrenceID: c.OccurrenceID, InstrumentID: c.InstrumentID,
			TaskType: c.TaskType, CompletedAt: c.CompletedAt, Notes: c.Notes,
			PhotoURL: c.PhotoURL,
		})
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}
	return string(out), nil
}

func (s *ExportServiceImpl) instrumentNames(ctx context.Context) (map[string]string, error) {
	instruments, err := s.instrumentRepo.List(ctx, secondary.InstrumentFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	names := make(map[string]string, len(instruments))
	for _, inst := range instruments {
		names[inst.ID] = inst.Name
	}
	return names, nil
}
