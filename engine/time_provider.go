package engine

import "time"

// TimeProvider abstracts the monotonic clock so coordinators and effects
// can be driven deterministically in tests.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production time provider.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time.
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
