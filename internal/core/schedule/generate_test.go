package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dates(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = date(s)
	}
	return out
}

func TestDueDatesEveryNDays(t *testing.T) {
	r := Routine{Frequency: FrequencyDays, IntervalDays: 7, Start: date("2025-01-01")}

	got, err := r.DueDates(date("2025-01-22"))
	require.NoError(t, err)
	assert.Equal(t, dates("2025-01-01", "2025-01-08", "2025-01-15", "2025-01-22"), got)
}

func TestDueDatesWeekly(t *testing.T) {
	r := Routine{Frequency: FrequencyWeekly, Start: date("2025-03-03")}

	got, err := r.DueDates(date("2025-03-20"))
	require.NoError(t, err)
	assert.Equal(t, dates("2025-03-03", "2025-03-10", "2025-03-17"), got)
}

func TestDueDatesMonthlyClampsToMonthEnd(t *testing.T) {
	r := Routine{Frequency: FrequencyMonthly, Start: date("2025-01-31")}

	got, err := r.DueDates(date("2025-04-30"))
	require.NoError(t, err)
	// 2025 is not a leap year; later months recover the original day
	// where it exists.
	assert.Equal(t, dates("2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"), got)
}

func TestDueDatesMonthlyLeapYear(t *testing.T) {
	r := Routine{Frequency: FrequencyMonthly, Start: date("2024-01-31")}

	got, err := r.DueDates(date("2024-02-29"))
	require.NoError(t, err)
	assert.Equal(t, dates("2024-01-31", "2024-02-29"), got)
}

func TestDueDatesHorizonBeforeStartIsEmpty(t *testing.T) {
	r := Routine{Frequency: FrequencyDays, IntervalDays: 3, Start: date("2025-06-01")}

	got, err := r.DueDates(date("2025-05-01"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDueDatesHorizonEqualsStart(t *testing.T) {
	r := Routine{Frequency: FrequencyWeekly, Start: date("2025-06-01")}

	got, err := r.DueDates(date("2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, dates("2025-06-01"), got)
}

func TestGenerateIsIdempotent(t *testing.T) {
	r := Routine{Frequency: FrequencyDays, IntervalDays: 7, Start: date("2025-01-01")}

	first, err := r.Generate(date("2025-01-22"), nil)
	require.NoError(t, err)
	require.Len(t, first, 4)

	// Extending the horizon with the first batch already materialized
	// must only return the new tail, never a duplicate.
	second, err := r.Generate(date("2025-02-05"), first)
	require.NoError(t, err)
	assert.Equal(t, dates("2025-01-29", "2025-02-05"), second)

	// Re-running with everything materialized is a no-op.
	third, err := r.Generate(date("2025-02-05"), append(first, second...))
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestMissingPreservesCandidateOrder(t *testing.T) {
	candidates := dates("2025-01-01", "2025-01-08", "2025-01-15")
	existing := dates("2025-01-08")

	assert.Equal(t, dates("2025-01-01", "2025-01-15"), Missing(candidates, existing))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		routine Routine
		wantErr error
	}{
		{
			name:    "days with positive interval",
			routine: Routine{Frequency: FrequencyDays, IntervalDays: 3, Start: date("2025-01-01")},
		},
		{
			name:    "weekly needs no interval",
			routine: Routine{Frequency: FrequencyWeekly, Start: date("2025-01-01")},
		},
		{
			name:    "monthly needs no interval",
			routine: Routine{Frequency: FrequencyMonthly, Start: date("2025-01-01")},
		},
		{
			name:    "zero interval rejected",
			routine: Routine{Frequency: FrequencyDays, IntervalDays: 0, Start: date("2025-01-01")},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "negative interval rejected",
			routine: Routine{Frequency: FrequencyDays, IntervalDays: -2, Start: date("2025-01-01")},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "unknown frequency rejected",
			routine: Routine{Frequency: "fortnightly", Start: date("2025-01-01")},
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "missing start rejected",
			routine: Routine{Frequency: FrequencyWeekly},
			wantErr: ErrMissingStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.routine.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDateOfNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*3600)
	in := time.Date(2025, 7, 14, 23, 30, 0, 0, loc)

	got := DateOf(in)
	assert.Equal(t, date("2025-07-14"), got)
}
