package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedFixtures populates the database with development fixtures: a few
// instruments with routines, a materialized schedule around today, and
// enough completions to light up the analytics views.
func SeedFixtures(database *sql.DB) error {
	now := time.Now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	instruments := []struct{ id, name, category, notes string }{
		{"INST-001", "Alto Saxophone", "Woodwind", "Selmer, needs pad check"},
		{"INST-002", "Trumpet", "Brass", ""},
		{"INST-003", "Cello", "Bowed string", "Rental"},
	}
	for _, i := range instruments {
		if _, err := database.Exec(
			"INSERT INTO instruments (id, name, category, notes) VALUES (?, ?, ?, ?)",
			i.id, i.name, i.category, i.notes,
		); err != nil {
			return fmt.Errorf("seed instruments: %w", err)
		}
	}

	routines := []struct {
		id, instrumentID, taskType, frequency string
		intervalDays                          int
		startOffset                           int
	}{
		{"ROUT-001", "INST-001", "Cleaning", "days", 3, -14},
		{"ROUT-002", "INST-001", "Practice", "days", 1, -7},
		{"ROUT-003", "INST-002", "Cleaning", "weekly", 0, -21},
		{"ROUT-004", "INST-003", "Disinfecting", "monthly", 0, -40},
	}
	for _, r := range routines {
		if _, err := database.Exec(
			"INSERT INTO routines (id, instrument_id, task_type, frequency, interval_days, start_date) VALUES (?, ?, ?, ?, ?, ?)",
			r.id, r.instrumentID, r.taskType, r.frequency, r.intervalDays, day(r.startOffset),
		); err != nil {
			return fmt.Errorf("seed routines: %w", err)
		}
	}

	// A hand-picked slice of the schedule: some overdue, some completed,
	// some upcoming. Generation fills in the rest on first run.
	occurrences := []struct {
		routineID, instrumentID, taskType string
		dueOffset                         int
		completed                         bool
	}{
		{"ROUT-001", "INST-001", "Cleaning", -6, true},
		{"ROUT-001", "INST-001", "Cleaning", -3, true},
		{"ROUT-001", "INST-001", "Cleaning", 0, false},
		{"ROUT-002", "INST-001", "Practice", -2, true},
		{"ROUT-002", "INST-001", "Practice", -1, true},
		{"ROUT-002", "INST-001", "Practice", 0, false},
		{"ROUT-003", "INST-002", "Cleaning", -7, false},
		{"ROUT-003", "INST-002", "Cleaning", 0, false},
		{"ROUT-004", "INST-003", "Disinfecting", -10, true},
	}
	for _, o := range occurrences {
		id := uuid.NewString()
		completedAt := ""
		if o.completed {
			completedAt = now.AddDate(0, 0, o.dueOffset).Format(time.RFC3339)
		}
		if _, err := database.Exec(
			"INSERT INTO occurrences (id, routine_id, instrument_id, task_type, due_date, completed, completed_at) VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''))",
			id, o.routineID, o.instrumentID, o.taskType, day(o.dueOffset), boolToInt(o.completed), completedAt,
		); err != nil {
			return fmt.Errorf("seed occurrences: %w", err)
		}
		if o.completed {
			if _, err := database.Exec(
				"INSERT INTO completions (id, occurrence_id, instrument_id, task_type, completed_at) VALUES (?, ?, ?, ?, ?)",
				uuid.NewString(), id, o.instrumentID, o.taskType, completedAt,
			); err != nil {
				return fmt.Errorf("seed completions: %w", err)
			}
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
