package engine

import "time"

// TimeProvider is the game's monotonic clock and its blocking pause
// Every timing decision and every cosmetic delay goes through it
type TimeProvider interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (p *MonotonicTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
