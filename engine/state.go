package engine

import (
	"time"

	"github.com/lixenwraith/whack-a-mole/constants"
)

// NoTarget marks GameState.ActiveTarget when no LED is lit
const NoTarget = -1

// GameState is the single mutable record of a session
// Owned by the Game loop; selector, evaluator and phase controller mutate it one at a time
type GameState struct {
	Score              int
	Lives              int
	Phase              int
	ActiveTarget       int
	TargetActivatedAt  time.Time
	ReactionBudget     time.Duration
	NextPhaseThreshold int
	Running            bool
}

// NewGameState returns the phase 1 starting state
func NewGameState() GameState {
	return GameState{
		Lives:              constants.StartingLives,
		Phase:              1,
		ActiveTarget:       NoTarget,
		ReactionBudget:     constants.InitialReactionBudget,
		NextPhaseThreshold: constants.FirstPhaseThreshold,
		Running:            true,
	}
}

// HasTarget reports whether a target is lit
func (s GameState) HasTarget() bool {
	return s.ActiveTarget >= 0 && s.ActiveTarget < constants.TargetCount
}

// ButtonDebounceState tracks the last accepted press of one button
// Zero time means no press accepted yet
type ButtonDebounceState struct {
	LastAcceptedAt time.Time
}

// DebounceTable holds debounce state for every button
type DebounceTable [constants.TargetCount]ButtonDebounceState
