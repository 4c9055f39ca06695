package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Sleep advances the mock clock instead of blocking
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	slept       time.Duration
	sleeps      int
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep advances the clock by d and records the pause
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.slept += d
	m.sleeps++
}

// Slept returns the total duration passed to Sleep
func (m *MockTimeProvider) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}

// SleepCount returns the number of Sleep calls
func (m *MockTimeProvider) SleepCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sleeps
}
