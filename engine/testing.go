package engine

import (
	"time"

	"github.com/lixenwraith/whack-a-mole/board"
)

// TestEpoch is the start time used by test clocks
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SequenceRandom replays a fixed list of picks, cycling when exhausted
// Picks are reduced modulo n so any list is valid for any IntN call
type SequenceRandom struct {
	picks []int
	next  int
	calls int
}

// NewSequenceRandom creates a SequenceRandom; an empty list always picks 0
func NewSequenceRandom(picks ...int) *SequenceRandom {
	return &SequenceRandom{picks: picks}
}

// IntN implements RandomSource
func (r *SequenceRandom) IntN(n int) int {
	r.calls++
	if len(r.picks) == 0 {
		return 0
	}
	v := r.picks[r.next%len(r.picks)]
	r.next++
	return ((v % n) + n) % n
}

// Calls returns how many picks were drawn
func (r *SequenceRandom) Calls() int {
	return r.calls
}

// NewTestGame creates a minimal Game on a mock clock with scripted target picks
func NewTestGame(b board.Board, clock *MockTimeProvider, picks ...int) *Game {
	return NewGame(Options{
		Board:   b,
		Clock:   clock,
		Random:  NewSequenceRandom(picks...),
		Session: "test",
	})
}

// StartActive puts a test game straight into the Active state with the first target lit
// Skips the start countdown so tests begin at a known time
func (g *Game) StartActive() {
	if err := g.machine.Init(g); err != nil {
		panic(err)
	}
	g.machine.HandleEvent(g, EventCountdownDone)
	g.activate()
	g.publish()
}
