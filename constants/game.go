package constants

import "time"

// Board Layout
const (
	// TargetCount is the number of LED targets and matching buttons
	TargetCount = 3

	// DisplayCount is the number of seven-segment digits (units, tens)
	DisplayCount = 2
)

// Scoring & Lives
const (
	// HitPoints is the fixed award for hitting the active target
	HitPoints = 1

	// StartingLives is the life count at game start and after every phase advance
	StartingLives = 3

	// FirstPhaseThreshold is the score that ends phase 1
	FirstPhaseThreshold = 5

	// PhaseThresholdStep is added to the threshold on every phase advance
	PhaseThresholdStep = 5

	// ScoreModulo wraps scores onto the two-digit display
	ScoreModulo = 100
)

// Reaction Budget
const (
	// InitialReactionBudget is how long a target stays lit in phase 1
	InitialReactionBudget = 3000 * time.Millisecond

	// ReactionBudgetStep is removed from the budget on every phase advance
	ReactionBudgetStep = 500 * time.Millisecond

	// MinReactionBudget is the floor for the reaction budget
	MinReactionBudget = 1000 * time.Millisecond
)
