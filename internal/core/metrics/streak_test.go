package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreak(t *testing.T) {
	today := date("2025-05-10")

	tests := []struct {
		name        string
		completedAt []time.Time
		want        int
	}{
		{
			name: "no completions",
			want: 0,
		},
		{
			name: "single completion today",
			completedAt: []time.Time{
				stamp("2025-05-10T08:00:00Z"),
			},
			want: 1,
		},
		{
			name: "three consecutive days ending today",
			completedAt: []time.Time{
				stamp("2025-05-08T09:00:00Z"),
				stamp("2025-05-09T21:30:00Z"),
				stamp("2025-05-10T07:15:00Z"),
			},
			want: 3,
		},
		{
			name: "empty today is skipped not broken",
			completedAt: []time.Time{
				stamp("2025-05-08T09:00:00Z"),
				stamp("2025-05-09T21:30:00Z"),
			},
			want: 2,
		},
		{
			name: "gap before yesterday breaks the chain",
			completedAt: []time.Time{
				stamp("2025-05-06T09:00:00Z"),
				stamp("2025-05-07T09:00:00Z"),
				stamp("2025-05-09T09:00:00Z"),
				stamp("2025-05-10T09:00:00Z"),
			},
			want: 2,
		},
		{
			name: "latest completion older than yesterday",
			completedAt: []time.Time{
				stamp("2025-05-01T09:00:00Z"),
				stamp("2025-05-02T09:00:00Z"),
			},
			want: 0,
		},
		{
			name: "multiple completions per day count once",
			completedAt: []time.Time{
				stamp("2025-05-09T08:00:00Z"),
				stamp("2025-05-09T18:00:00Z"),
				stamp("2025-05-10T08:00:00Z"),
				stamp("2025-05-10T18:00:00Z"),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.completedAt, today))
		})
	}
}
