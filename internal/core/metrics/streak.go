package metrics

import (
	"sort"
	"time"

	"github.com/beveridges/practice-app/internal/core/schedule"
)

// Streak counts consecutive calendar days ending at today, each with at
// least one completion timestamp. A today with no completions yet is
// skipped rather than breaking the chain, so the walk may start at
// yesterday instead. Returns 0 when there are no completions at all.
func Streak(completedAt []time.Time, today time.Time) int {
	days := uniqueDaysDesc(completedAt)
	if len(days) == 0 {
		return 0
	}

	expected := schedule.DateOf(today)
	if !days[0].Equal(expected) {
		expected = expected.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func uniqueDaysDesc(stamps []time.Time) []time.Time {
	seen := make(map[string]bool, len(stamps))
	days := make([]time.Time, 0, len(stamps))
	for _, s := range stamps {
		d := schedule.DateOf(s)
		key := schedule.FormatDate(d)
		if !seen[key] {
			seen[key] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}
