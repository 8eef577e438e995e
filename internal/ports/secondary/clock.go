package secondary

import "time"

// Clock defines the secondary port for the current time. Generation
// horizons and analytics windows derive from it, so tests can pin "today"
// instead of reading the system clock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
