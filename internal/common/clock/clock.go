package clock

import "time"

// Clock is the source of time and scheduled callbacks for the game
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// AfterFunc runs f once d has elapsed, unless the returned Timer is stopped first
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call stopped the timer.
	Stop() bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine after d
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
