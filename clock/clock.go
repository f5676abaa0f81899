// Package clock provides the time source used by animations, hover
// decay and debouncing, with a mockable provider for tests.
package clock

import "time"

// Provider supplies the current time with monotonic clock readings
type Provider interface {
	Now() time.Time
}

// Monotonic is the real system time provider
type Monotonic struct{}

// NewMonotonic creates a monotonic time provider
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

// Now returns the current time with monotonic clock reading
func (p *Monotonic) Now() time.Time {
	return time.Now()
}
