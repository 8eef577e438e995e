// Package primary defines the primary ports (driving adapters) for the application.
// These are the service interfaces the presentation layer calls.
package primary

import "errors"

// Lookup failures surfaced to the presentation layer. Services translate
// repository misses into these; rule-validation errors live in core/schedule.
var (
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrRoutineNotFound    = errors.New("routine not found")
	ErrOccurrenceNotFound = errors.New("occurrence not found")
)
