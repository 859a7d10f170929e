package mocks

import (
	"time"

	"github.com/mcoot/playerlist/internal/dependencies/clock"
)

// MockClock is a fixed clock that counts how often it was read, so tests can
// tell automatic updates (which never stamp a record) from manual edits
type MockClock struct {
	CurrentTime time.Time
	Reads       int
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t.UTC()}
}

func (c *MockClock) Now() time.Time {
	c.Reads++
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
