package status

import (
	"strings"
	"sync"
	"testing"
)

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	if got := r.Int(KeyScore); got != 0 {
		t.Errorf("Expected unset int to read 0, got %d", got)
	}
	if got := r.String(KeyState); got != "" {
		t.Errorf("Expected unset string to read empty, got %q", got)
	}
	if r.Bool(KeyRunning) {
		t.Error("Expected unset bool to read false")
	}
	// Reads must not register keys
	if r.TotalCount() != 0 {
		t.Errorf("Expected no registered metrics, got %d", r.TotalCount())
	}
}

func TestRegistryWriteRead(t *testing.T) {
	r := NewRegistry()

	r.Ints.Get(KeyScore).Store(37)
	r.Bools.Get(KeyRunning).Store(true)
	r.Strings.Get(KeyState).Store("active")

	if got := r.Int(KeyScore); got != 37 {
		t.Errorf("Expected score 37, got %d", got)
	}
	if !r.Bool(KeyRunning) {
		t.Error("Expected running true")
	}
	if got := r.String(KeyState); got != "active" {
		t.Errorf("Expected state active, got %q", got)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicString]()

	var wg sync.WaitGroup
	ptrs := make([]*AtomicString, 20)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("k")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(ptrs); i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatal("Expected every Get to return the same pointer")
		}
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	for _, k := range []string{"phase", "best", "lives"} {
		m.Get(k).Store(k)
	}

	var keys []string
	m.Range(func(key string, ptr *AtomicString) {
		keys = append(keys, key)
		if ptr.Load() != key {
			t.Errorf("Expected value %q, got %q", key, ptr.Load())
		}
	})

	if strings.Join(keys, ",") != "best,lives,phase" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyScore).Store(12)
	r.Bools.Get(KeyRunning).Store(true)
	r.Strings.Get(KeyState).Store("active")

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(snap))
	}
	if snap[KeyScore] != int64(12) || snap[KeyRunning] != true || snap[KeyState] != "active" {
		t.Errorf("Unexpected snapshot %v", snap)
	}
}
