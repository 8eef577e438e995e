package primary

import "context"

// Period selects the trailing window for completion-rate queries.
type Period string

const (
	// PeriodWeekly covers the trailing 7 days ending today.
	PeriodWeekly Period = "weekly"
	// PeriodMonthly covers the trailing 30 days ending today.
	PeriodMonthly Period = "monthly"
)

// AnalyticsService defines the primary port for derived metrics. All
// operations are pure reads recomputed per request.
type AnalyticsService interface {
	// CompletionRate reports the completion ratio of occurrences due in
	// the period's trailing window.
	CompletionRate(ctx context.Context, period Period) (*CompletionRate, error)

	// Streak reports the consecutive days with at least one completion,
	// ending at today or yesterday.
	Streak(ctx context.Context) (int, error)

	// InstrumentScores reports each instrument's completion ratio over
	// the trailing 30 days. Instruments with nothing due score 0.
	InstrumentScores(ctx context.Context) ([]*InstrumentScore, error)

	// Breakdown reports occurrence counts by task type and by instrument
	// over the full history.
	Breakdown(ctx context.Context) (*Breakdown, error)
}

// CompletionRate is the outcome of a completion-rate query.
type CompletionRate struct {
	Period    Period
	Completed int
	Total     int
	Rate      int
}

// InstrumentScore is one instrument's score over the trailing window.
type InstrumentScore struct {
	InstrumentID   string
	InstrumentName string
	Completed      int
	Total          int
	Score          int
}

// Breakdown groups occurrence counts over the full history. ByInstrument
// is keyed by instrument name; occurrences whose instrument was deleted
// group under "Unknown".
type Breakdown struct {
	ByType       map[string]int
	ByInstrument map[string]int
}
