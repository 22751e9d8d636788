package clock

import "time"

// Clock provides the current time and can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time truncated to milliseconds, the resolution
// every storage backend keeps
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
