// Package schedule contains the pure recurrence logic for care routines.
// It knows nothing about persistence; the generator works on plain dates
// and the caller owns reading and writing occurrence rows.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical ISO format for due dates and start dates.
const DateLayout = "2006-01-02"

// Frequency identifies how a routine repeats.
type Frequency string

const (
	// FrequencyDays repeats every IntervalDays days.
	FrequencyDays Frequency = "days"
	// FrequencyWeekly repeats every 7 days.
	FrequencyWeekly Frequency = "weekly"
	// FrequencyMonthly repeats every calendar month, clamping the
	// day-of-month to the target month's last day.
	FrequencyMonthly Frequency = "monthly"
)

var (
	ErrInvalidFrequency = errors.New("schedule: invalid frequency")
	ErrInvalidInterval  = errors.New("schedule: interval must be at least 1")
	ErrMissingStart     = errors.New("schedule: start date is required")
)

// Routine is the recurrence rule for one care task on one instrument.
// IntervalDays is only meaningful for FrequencyDays; weekly and monthly
// routines carry no tunable interval.
type Routine struct {
	Frequency    Frequency
	IntervalDays int
	Start        time.Time
}

// Validate checks the rule at creation time so invalid rules never reach
// the generator.
func (r Routine) Validate() error {
	switch r.Frequency {
	case FrequencyDays:
		if r.IntervalDays < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidInterval, r.IntervalDays)
		}
	case FrequencyWeekly, FrequencyMonthly:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, r.Frequency)
	}
	if r.Start.IsZero() {
		return ErrMissingStart
	}
	return nil
}

// DateOf truncates t to its calendar date in UTC. All schedule arithmetic
// happens on dates normalized this way.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO date string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule: parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a normalized date in the canonical layout.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}
