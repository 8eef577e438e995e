package schedule

import "time"

// DueDates expands the routine into its full due-date sequence from the
// start date through horizon (inclusive). A horizon before the start date
// yields an empty sequence, not an error.
func (r Routine) DueDates(horizon time.Time) ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	start := DateOf(r.Start)
	end := DateOf(horizon)
	if end.Before(start) {
		return []time.Time{}, nil
	}

	var dates []time.Time
	for k := 0; ; k++ {
		next := r.nth(start, k)
		if next.After(end) {
			break
		}
		dates = append(dates, next)
	}
	return dates, nil
}

// nth returns the k-th due date of the sequence (k = 0 is the start date).
func (r Routine) nth(start time.Time, k int) time.Time {
	switch r.Frequency {
	case FrequencyWeekly:
		return start.AddDate(0, 0, 7*k)
	case FrequencyMonthly:
		return addMonthsClamped(start, k)
	default:
		return start.AddDate(0, 0, r.IntervalDays*k)
	}
}

// addMonthsClamped advances start by k calendar months. When the start
// day-of-month does not exist in the target month, the result clamps to
// the target month's last day (Jan 31 -> Feb 28/29).
func addMonthsClamped(start time.Time, k int) time.Time {
	y, m, d := start.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, k, 0)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// Missing returns the candidates whose dates are not already present in
// existing, preserving candidate order. This is the idempotency diff:
// repeated generation over a growing horizon only ever returns dates that
// have not been materialized yet.
func Missing(candidates []time.Time, existing []time.Time) []time.Time {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[FormatDate(e)] = true
	}

	missing := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if !seen[FormatDate(c)] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Generate computes the due dates the routine is owed through horizon,
// given the dates already materialized for it.
func (r Routine) Generate(horizon time.Time, existing []time.Time) ([]time.Time, error) {
	candidates, err := r.DueDates(horizon)
	if err != nil {
		return nil, err
	}
	return Missing(candidates, existing), nil
}
