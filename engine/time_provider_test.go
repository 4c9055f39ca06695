package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	provider.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)

	if now := mock.Now(); !now.Equal(TestEpoch) {
		t.Errorf("Expected initial time to be %v, got %v", TestEpoch, now)
	}

	mock.Advance(1 * time.Hour)
	if now := mock.Now(); !now.Equal(TestEpoch.Add(time.Hour)) {
		t.Errorf("Expected time to be %v after Advance, got %v", TestEpoch.Add(time.Hour), now)
	}

	newTime := TestEpoch.Add(24 * time.Hour)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}
}

func TestMockTimeProviderSleepAdvances(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)

	mock.Sleep(150 * time.Millisecond)
	mock.Sleep(50 * time.Millisecond)

	if now := mock.Now(); !now.Equal(TestEpoch.Add(200 * time.Millisecond)) {
		t.Errorf("Expected Sleep to advance mock clock, got %v", now.Sub(TestEpoch))
	}
	if mock.Slept() != 200*time.Millisecond {
		t.Errorf("Expected 200ms slept, got %v", mock.Slept())
	}
	if mock.SleepCount() != 2 {
		t.Errorf("Expected 2 sleeps, got %d", mock.SleepCount())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}

func TestSequenceRandom(t *testing.T) {
	r := NewSequenceRandom(2, 0, 4, -1)

	want := []int{2, 0, 1, 2, 2}
	for i, w := range want {
		if got := r.IntN(3); got != w {
			t.Errorf("pick %d: expected %d, got %d", i, w, got)
		}
	}
	if r.Calls() != len(want) {
		t.Errorf("Expected %d calls, got %d", len(want), r.Calls())
	}
}

func TestNewRandomSourceSeeded(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)
	for i := 0; i < 50; i++ {
		va, vb := a.IntN(3), b.IntN(3)
		if va != vb {
			t.Fatalf("Expected identical sequences for same seed, diverged at %d", i)
		}
		if va < 0 || va > 2 {
			t.Fatalf("Pick %d out of range", va)
		}
	}
}
