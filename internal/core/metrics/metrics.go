// Package metrics contains the pure analytics computations over the
// occurrence and completion history. Callers fetch the rows; everything
// here is arithmetic on slices.
package metrics

import (
	"math"
	"time"

	"github.com/beveridges/practice-app/internal/core/schedule"
)

// Occurrence is the slim view of an occurrence the computations need.
type Occurrence struct {
	InstrumentID string
	TaskType     string
	DueDate      time.Time
	Completed    bool
}

// Window is an inclusive date range.
type Window struct {
	From time.Time
	To   time.Time
}

// TrailingWindow returns the window of the given number of days ending at
// end (inclusive). TrailingWindow(today, 7) covers today and the six days
// before it.
func TrailingWindow(end time.Time, days int) Window {
	to := schedule.DateOf(end)
	return Window{From: to.AddDate(0, 0, -(days - 1)), To: to}
}

// Contains reports whether the date of t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := schedule.DateOf(t)
	return !d.Before(w.From) && !d.After(w.To)
}

// RateReport is a completion ratio over some set of occurrences.
type RateReport struct {
	Completed int
	Total     int
	Rate      int
}

// CompletionRate counts the occurrences due inside the window and the
// completed subset. Rate is the percentage rounded to the nearest integer,
// 0 when nothing was due.
func CompletionRate(occurrences []Occurrence, w Window) RateReport {
	var report RateReport
	for _, o := range occurrences {
		if !w.Contains(o.DueDate) {
			continue
		}
		report.Total++
		if o.Completed {
			report.Completed++
		}
	}
	report.Rate = percentage(report.Completed, report.Total)
	return report
}

// Score is one instrument's completion ratio over the scoring window.
type Score struct {
	InstrumentID string
	Completed    int
	Total        int
	Score        int
}

// Scores computes a per-instrument RateReport over the window. Instruments
// with no occurrences due in the window score 0.
func Scores(occurrences []Occurrence, w Window) map[string]Score {
	scores := make(map[string]Score)
	for _, o := range occurrences {
		if !w.Contains(o.DueDate) {
			continue
		}
		s := scores[o.InstrumentID]
		s.InstrumentID = o.InstrumentID
		s.Total++
		if o.Completed {
			s.Completed++
		}
		scores[o.InstrumentID] = s
	}
	for id, s := range scores {
		s.Score = percentage(s.Completed, s.Total)
		scores[id] = s
	}
	return scores
}

// Breakdown groups occurrence counts over the full history.
type Breakdown struct {
	ByType       map[string]int
	ByInstrument map[string]int
}

// GroupCounts tallies occurrences by task type and by instrument. No
// window applies; the breakdown covers everything ever materialized.
func GroupCounts(occurrences []Occurrence) Breakdown {
	b := Breakdown{
		ByType:       make(map[string]int),
		ByInstrument: make(map[string]int),
	}
	for _, o := range occurrences {
		b.ByType[o.TaskType]++
		b.ByInstrument[o.InstrumentID]++
	}
	return b
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
