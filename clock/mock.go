package clock

import (
	"sync"
	"time"
)

// Mock provides a controllable time source for testing
type Mock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMock creates a mock provider starting at the given time
func NewMock(start time.Time) *Mock {
	return &Mock{current: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime sets the current time for the mock
func (m *Mock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance advances the current time by the given duration
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
