package engine

import "github.com/lixenwraith/whack-a-mole/constants"

// AdvancePhase applies the difficulty step of a phase advance
// Budget shrinks by a fixed step down to the floor, lives refill, the threshold moves up
func AdvancePhase(s *GameState) {
	s.Phase++
	s.ReactionBudget = max(constants.MinReactionBudget, s.ReactionBudget-constants.ReactionBudgetStep)
	s.Lives = constants.StartingLives
	s.NextPhaseThreshold += constants.PhaseThresholdStep
}

// EndGame stops the session; no further mutation follows
func EndGame(s *GameState) {
	s.Running = false
	s.ActiveTarget = NoTarget
}
