// Package clock provides the system implementation of the Clock port.
package clock

import "time"

// System reads the real wall clock.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() *System {
	return &System{}
}

// Now returns the current time.
func (*System) Now() time.Time {
	return time.Now()
}
