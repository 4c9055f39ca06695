package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// EventType identifies an external trigger routed through HandleEvent
type EventType int

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g., *engine.Game)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	// InitialStateID is entered by Init and Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	transitions   int
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Terminal nodes accept no further events
	Terminal bool

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
