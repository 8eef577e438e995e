package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/beveridges/practice-app/internal/adapters/sqlite"
	"github.com/beveridges/practice-app/internal/ports/secondary"
)

func TestRoutineRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRoutineRepository(db)
	ctx := context.Background()

	seedInstrument(t, db, "INST-001", "")

	routine := &secondary.RoutineRecord{
		ID:           "ROUT-001",
		InstrumentID: "INST-001",
		TaskType:     "Practice",
		Frequency:    "days",
		IntervalDays: 2,
		StartDate:    "2025-03-01",
	}

	if err := repo.Create(ctx, routine); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "ROUT-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.TaskType != "Practice" || got.Frequency != "days" || got.IntervalDays != 2 {
		t.Errorf("unexpected routine: %+v", got)
	}
	if got.StartDate != "2025-03-01" {
		t.Errorf("expected start date 2025-03-01, got %q", got.StartDate)
	}
}

func TestRoutineRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRoutineRepository(db)

	_, err := repo.GetByID(context.Background(), "ROUT-MISSING")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRoutineRepository_Create_RequiresInstrument(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRoutineRepository(db)

	err := repo.Create(context.Background(), &secondary.RoutineRecord{
		ID:           "ROUT-001",
		InstrumentID: "INST-MISSING",
		TaskType:     "Cleaning",
		Frequency:    "weekly",
		StartDate:    "2025-01-01",
	})
	if err == nil {
		t.Error("expected foreign key violation, got nil")
	}
}

func TestRoutineRepository_List_FiltersByInstrument(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRoutineRepository(db)
	ctx := context.Background()

	seedInstrument(t, db, "INST-001", "Sax")
	seedInstrument(t, db, "INST-002", "Cello")
	seedRoutine(t, db, "ROUT-001", "INST-001")
	seedRoutine(t, db, "ROUT-002", "INST-001")
	seedRoutine(t, db, "ROUT-003", "INST-002")

	routines, err := repo.List(ctx, secondary.RoutineFilters{InstrumentID: "INST-001"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(routines) != 2 {
		t.Errorf("expected 2 routines for INST-001, got %d", len(routines))
	}

	all, err := repo.List(ctx, secondary.RoutineFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 routines, got %d", len(all))
	}
}

func TestRoutineRepository_Delete_CascadesToOccurrences(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRoutineRepository(db)
	ctx := context.Background()

	seedInstrument(t, db, "INST-001", "")
	seedRoutine(t, db, "ROUT-001", "INST-001")
	seedOccurrence(t, db, "OCC-001", "ROUT-001", "INST-001", "2025-01-01")
	seedOccurrence(t, db, "OCC-002", "ROUT-001", "INST-001", "2025-01-08")

	if err := repo.Delete(ctx, "ROUT-001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var occurrences int
	if err := db.QueryRow("SELECT COUNT(*) FROM occurrences").Scan(&occurrences); err != nil {
		t.Fatal(err)
	}
	if occurrences != 0 {
		t.Errorf("expected occurrences to cascade, %d left", occurrences)
	}
}

func TestRoutineRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRoutineRepository(db)

	err := repo.Delete(context.Background(), "ROUT-MISSING")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
