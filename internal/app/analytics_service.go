package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/beveridges/practice-app/internal/core/metrics"
	"github.com/beveridges/practice-app/internal/core/schedule"
	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/ports/secondary"
)

// scoreWindowDays is the trailing window for per-instrument scores.
const scoreWindowDays = 30

// AnalyticsServiceImpl implements the AnalyticsService interface. Every
// query recomputes from the stored history; nothing is cached.
type AnalyticsServiceImpl struct {
	occurrenceRepo secondary.OccurrenceRepository
	completionRepo secondary.CompletionRepository
	instrumentRepo secondary.InstrumentRepository
	clock          secondary.Clock
}

// NewAnalyticsService creates a new AnalyticsService with injected dependencies.
func NewAnalyticsService(
	occurrenceRepo secondary.OccurrenceRepository,
	completionRepo secondary.CompletionRepository,
	instrumentRepo secondary.InstrumentRepository,
	clock secondary.Clock,
) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		occurrenceRepo: occurrenceRepo,
		completionRepo: completionRepo,
		instrumentRepo: instrumentRepo,
		clock:          clock,
	}
}

// CompletionRate reports the completion ratio of occurrences due in the
// period's trailing window.
func (s *AnalyticsServiceImpl) CompletionRate(ctx context.Context, period primary.Period) (*primary.CompletionRate, error) {
	days := 0
	switch period {
	case primary.PeriodWeekly:
		days = 7
	case primary.PeriodMonthly:
		days = 30
	default:
		return nil, fmt.Errorf("invalid period %q: want weekly or monthly", period)
	}

	window := metrics.TrailingWindow(s.clock.Now(), days)
	occurrences, err := s.occurrencesIn(ctx, window)
	if err != nil {
		return nil, err
	}

	report := metrics.CompletionRate(occurrences, window)
	return &primary.CompletionRate{
		Period:    period,
		Completed: report.Completed,
		Total:     report.Total,
		Rate:      report.Rate,
	}, nil
}

// Streak reports the consecutive days with at least one completion.
func (s *AnalyticsServiceImpl) Streak(ctx context.Context) (int, error) {
	records, err := s.completionRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list completions: %w", err)
	}

	stamps := make([]time.Time, 0, len(records))
	for _, r := range records {
		at, err := time.Parse(time.RFC3339, r.CompletedAt)
		if err != nil {
			return 0, fmt.Errorf("stored completion timestamp is invalid: %w", err)
		}
		stamps = append(stamps, at)
	}

	return metrics.Streak(stamps, s.clock.Now()), nil
}

// InstrumentScores reports each instrument's completion ratio over the
// trailing 30 days, sorted by name. Instruments with nothing due in the
// window score 0.
func (s *AnalyticsServiceImpl) InstrumentScores(ctx context.Context) ([]*primary.InstrumentScore, error) {
	instruments, err := s.instrumentRepo.List(ctx, secondary.InstrumentFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	window := metrics.TrailingWindow(s.clock.Now(), scoreWindowDays)
	occurrences, err := s.occurrencesIn(ctx, window)
	if err != nil {
		return nil, err
	}
	byInstrument := metrics.Scores(occurrences, window)

	scores := make([]*primary.InstrumentScore, 0, len(instruments))
	for _, inst := range instruments {
		score := byInstrument[inst.ID]
		scores = append(scores, &primary.InstrumentScore{
			InstrumentID:   inst.ID,
			InstrumentName: inst.Name,
			Completed:      score.Completed,
			Total:          score.Total,
			Score:          score.Score,
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].InstrumentName < scores[j].InstrumentName })
	return scores, nil
}

// Breakdown reports occurrence counts by task type and by instrument name
// over the full history. Occurrences of deleted instruments group under
// "Unknown".
func (s *AnalyticsServiceImpl) Breakdown(ctx context.Context) (*primary.Breakdown, error) {
	records, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	instruments, err := s.instrumentRepo.List(ctx, secondary.InstrumentFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	names := make(map[string]string, len(instruments))
	for _, inst := range instruments {
		names[inst.ID] = inst.Name
	}

	counts := metrics.GroupCounts(toMetricsOccurrences(records))

	byInstrument := make(map[string]int, len(counts.ByInstrument))
	for id, n := range counts.ByInstrument {
		name := names[id]
		if name == "" {
			name = "Unknown"
		}
		byInstrument[name] += n
	}

	return &primary.Breakdown{
		ByType:       counts.ByType,
		ByInstrument: byInstrument,
	}, nil
}

// occurrencesIn loads the occurrences due inside the window as metric rows.
func (s *AnalyticsServiceImpl) occurrencesIn(ctx context.Context, w metrics.Window) ([]metrics.Occurrence, error) {
	records, err := s.occurrenceRepo.List(ctx, secondary.OccurrenceFilters{
		DueFrom: schedule.FormatDate(w.From),
		DueTo:   schedule.FormatDate(w.To),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	return toMetricsOccurrences(records), nil
}

func toMetricsOccurrences(records []*secondary.OccurrenceRecord) []metrics.Occurrence {
	occurrences := make([]metrics.Occurrence, 0, len(records))
	for _, r := range records {
		due, err := schedule.ParseDate(r.DueDate)
		if err != nil {
			continue
		}
		occurrences = append(occurrences, metrics.Occurrence{
			InstrumentID: r.InstrumentID,
			TaskType:     r.TaskType,
			DueDate:      due,
			Completed:    r.Completed,
		})
	}
	return occurrences
}
