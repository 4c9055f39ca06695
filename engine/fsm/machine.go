package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState registers a state node
// Re-adding an ID replaces the node, including its transitions
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	if id == StateNone {
		panic("fsm: StateNone cannot be registered")
	}
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	return node
}

// AddTransition links from -> to on event, guarded by guard if non-nil
func (m *Machine[T]) AddTransition(from StateID, event EventType, to StateID, guard GuardFunc[T]) error {
	node, ok := m.nodes[from]
	if !ok {
		return fmt.Errorf("transition source state %d not found", from)
	}
	if _, ok := m.nodes[to]; !ok {
		return fmt.Errorf("transition target state %d not found", to)
	}
	if node.Terminal {
		return fmt.Errorf("state '%s' is terminal", node.Name)
	}
	node.Transitions = append(node.Transitions, Transition[T]{TargetID: to, Event: event, Guard: guard})
	return nil
}

// OnEnter appends an entry action to a state
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit appends an exit action to a state
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

// Init enters the initial state, running its entry actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	m.transitions = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances time spent in the current state
func (m *Machine[T]) Update(dt time.Duration) {
	if m.activeStateID != StateNone {
		m.timeInState += dt
	}
}

// HandleEvent routes an event through the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, event EventType) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok || node.Terminal {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != event {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, node, trans.TargetID)
			return true
		}
	}
	return false
}

// transition runs exit actions of the current state, then entry actions of the target
// Self transitions re-run both
func (m *Machine[T]) transition(ctx T, from *Node[T], targetID StateID) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	for _, action := range from.OnExit {
		action(ctx)
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.transitions++

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Reset returns the machine to its initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range node.OnExit {
			action(ctx)
		}
	}
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// Current returns the active StateID, StateNone before Init
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active state's name
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// IsTerminal reports whether the active state accepts no further events
func (m *Machine[T]) IsTerminal() bool {
	node, ok := m.nodes[m.activeStateID]
	return ok && node.Terminal
}

// TimeInState returns time spent in the current state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// TransitionCount returns the number of transitions since Init
func (m *Machine[T]) TransitionCount() int {
	return m.transitions
}
