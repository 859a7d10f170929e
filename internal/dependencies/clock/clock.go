package clock

import "time"

// Clock stamps record creation and manual edits; mocked in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock, in UTC
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
