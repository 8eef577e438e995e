package primary

import "context"

// ExportService defines the primary port for data exports.
type ExportService interface {
	// ICS renders the occurrences matching the filters as an iCalendar
	// document with one all-day event per occurrence.
	ICS(ctx context.Context, filters OccurrenceFilters) (string, error)

	// CSV renders the full occurrence history as CSV.
	CSV(ctx context.Context) (string, error)

	// JSON renders a full backup (instruments, routines, occurrences,
	// completion log) as indented JSON.
	JSON(ctx context.Context) (string, error)
}
