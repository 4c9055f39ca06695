package status

import "sync/atomic"

// Metric keys published by the game engine
const (
	KeyScore     = "score"
	KeyLives     = "lives"
	KeyPhase     = "phase"
	KeyBudgetMs  = "budget_ms"
	KeyThreshold = "threshold"
	KeyBest      = "best"
	KeyRunning   = "running"
	KeyState     = "state"
	KeySession   = "session"
)

// Registry is the central metrics facade
// The engine writes after every state mutation; boards read when drawing
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int reads an int metric, zero if never written
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// String reads a string metric, empty if never written
func (r *Registry) String(key string) string {
	if !r.Strings.Has(key) {
		return ""
	}
	return r.Strings.Get(key).Load()
}

// Bool reads a bool metric, false if never written
func (r *Registry) Bool(key string) bool {
	if !r.Bools.Has(key) {
		return false
	}
	return r.Bools.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map, for logging
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
