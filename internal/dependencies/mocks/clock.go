package mocks

import (
	"time"

	"github.com/mcoot/guessr/internal/dependencies/clock"
)

// MockClock returns a fixed time until moved by the test
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
