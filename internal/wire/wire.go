// Package wire provides dependency injection for the application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/beveridges/practice-app/internal/adapters/clock"
	"github.com/beveridges/practice-app/internal/adapters/sqlite"
	"github.com/beveridges/practice-app/internal/app"
	"github.com/beveridges/practice-app/internal/config"
	"github.com/beveridges/practice-app/internal/db"
	"github.com/beveridges/practice-app/internal/ports/primary"
)

var (
	cfg               config.Config
	instrumentService primary.InstrumentService
	routineService    primary.RoutineService
	occurrenceService primary.OccurrenceService
	analyticsService  primary.AnalyticsService
	exportService     primary.ExportService
	once              sync.Once
)

// Config returns the loaded application configuration.
func Config() config.Config {
	once.Do(initServices)
	return cfg
}

// InstrumentService returns the singleton InstrumentService instance.
func InstrumentService() primary.InstrumentService {
	once.Do(initServices)
	return instrumentService
}

// RoutineService returns the singleton RoutineService instance.
func RoutineService() primary.RoutineService {
	once.Do(initServices)
	return routineService
}

// OccurrenceService returns the singleton OccurrenceService instance.
func OccurrenceService() primary.OccurrenceService {
	once.Do(initServices)
	return occurrenceService
}

// AnalyticsService returns the singleton AnalyticsService instance.
func AnalyticsService() primary.AnalyticsService {
	once.Do(initServices)
	return analyticsService
}

// ExportService returns the singleton ExportService instance.
func ExportService() primary.ExportService {
	once.Do(initServices)
	return exportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	configPath, err := config.DefaultPath()
	if err != nil {
		log.Fatalf("failed to locate config: %v", err)
	}
	cfg, err = config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DatabasePath != "" {
		db.SetPath(cfg.DatabasePath)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	instrumentRepo := sqlite.NewInstrumentRepository(database)
	routineRepo := sqlite.NewRoutineRepository(database)
	occurrenceRepo := sqlite.NewOccurrenceRepository(database)
	completionRepo := sqlite.NewCompletionRepository(database)
	clk := clock.NewSystem()

	// Services (primary ports implementation)
	instrumentService = app.NewInstrumentService(instrumentRepo)
	routineService = app.NewRoutineService(routineRepo, instrumentRepo, occurrenceRepo, clk, cfg.HorizonDays)
	occurrenceService = app.NewOccurrenceService(occurrenceRepo, completionRepo, instrumentRepo, clk)
	analyticsService = app.NewAnalyticsService(occurrenceRepo, completionRepo, instrumentRepo, clk)
	exportService = app.NewExportService(instrumentRepo, routineRepo, occurrenceRepo, completionRepo, clk)
}
