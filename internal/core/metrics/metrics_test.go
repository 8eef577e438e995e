package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTrailingWindow(t *testing.T) {
	w := TrailingWindow(date("2025-05-10"), 7)

	assert.Equal(t, date("2025-05-04"), w.From)
	assert.Equal(t, date("2025-05-10"), w.To)
	assert.True(t, w.Contains(date("2025-05-04")))
	assert.True(t, w.Contains(date("2025-05-10")))
	assert.False(t, w.Contains(date("2025-05-03")))
	assert.False(t, w.Contains(date("2025-05-11")))
}

func TestCompletionRate(t *testing.T) {
	today := date("2025-05-10")
	w := TrailingWindow(today, 7)

	occurrences := []Occurrence{
		{DueDate: date("2025-05-04"), Completed: true},
		{DueDate: date("2025-05-05"), Completed: true},
		{DueDate: date("2025-05-07"), Completed: true},
		{DueDate: date("2025-05-09"), Completed: false},
		{DueDate: date("2025-05-10"), Completed: false},
		// Outside the window, must not count either way.
		{DueDate: date("2025-05-03"), Completed: true},
		{DueDate: date("2025-05-11"), Completed: false},
	}

	got := CompletionRate(occurrences, w)
	assert.Equal(t, RateReport{Completed: 3, Total: 5, Rate: 60}, got)
}

func TestCompletionRateEmptyWindow(t *testing.T) {
	w := TrailingWindow(date("2025-05-10"), 30)

	got := CompletionRate(nil, w)
	assert.Equal(t, RateReport{Completed: 0, Total: 0, Rate: 0}, got)
}

func TestCompletionRateRounds(t *testing.T) {
	w := TrailingWindow(date("2025-05-10"), 30)

	occurrences := []Occurrence{
		{DueDate: date("2025-05-01"), Completed: true},
		{DueDate: date("2025-05-02"), Completed: false},
		{DueDate: date("2025-05-03"), Completed: false},
	}

	// 1/3 is 33.33..., rounds down to 33.
	got := CompletionRate(occurrences, w)
	assert.Equal(t, 33, got.Rate)

	occurrences[1].Completed = true
	// 2/3 is 66.66..., rounds up to 67.
	got = CompletionRate(occurrences, w)
	assert.Equal(t, 67, got.Rate)
}

func TestScores(t *testing.T) {
	w := TrailingWindow(date("2025-05-30"), 30)

	occurrences := []Occurrence{
		{InstrumentID: "flute", DueDate: date("2025-05-10"), Completed: true},
		{InstrumentID: "flute", DueDate: date("2025-05-17"), Completed: true},
		{InstrumentID: "flute", DueDate: date("2025-05-24"), Completed: false},
		{InstrumentID: "cello", DueDate: date("2025-05-20"), Completed: false},
		// Only due outside the window; must not produce a score entry.
		{InstrumentID: "drums", DueDate: date("2025-04-01"), Completed: true},
	}

	got := Scores(occurrences, w)
	assert.Equal(t, Score{InstrumentID: "flute", Completed: 2, Total: 3, Score: 67}, got["flute"])
	assert.Equal(t, Score{InstrumentID: "cello", Completed: 0, Total: 1, Score: 0}, got["cello"])
	assert.NotContains(t, got, "drums")
}

func TestGroupCounts(t *testing.T) {
	occurrences := []Occurrence{
		{InstrumentID: "flute", TaskType: "Cleaning"},
		{InstrumentID: "flute", TaskType: "Practice"},
		{InstrumentID: "cello", TaskType: "Cleaning"},
	}

	got := GroupCounts(occurrences)
	assert.Equal(t, map[string]int{"Cleaning": 2, "Practice": 1}, got.ByType)
	assert.Equal(t, map[string]int{"flute": 2, "cello": 1}, got.ByInstrument)
}

func TestGroupCountsEmpty(t *testing.T) {
	got := GroupCounts(nil)
	assert.Empty(t, got.ByType)
	assert.Empty(t, got.ByInstrument)
}
