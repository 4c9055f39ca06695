package engine

import (
	"time"

	"github.com/lixenwraith/whack-a-mole/constants"
)

// Outcome classifies what happened in a round
type Outcome int

const (
	OutcomeNoInput Outcome = iota
	OutcomeHit
	OutcomeMiss
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoInput:
		return "no_input"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Transition is what the loop does after an evaluation
type Transition int

const (
	TransitionStay Transition = iota
	TransitionNewRound
	TransitionPhaseAdvance
	TransitionGameOver
)

func (t Transition) String() string {
	switch t {
	case TransitionStay:
		return "stay"
	case TransitionNewRound:
		return "new_round"
	case TransitionPhaseAdvance:
		return "phase_advance"
	case TransitionGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Evaluate applies a sampled press to the state
// NoInput never costs a life; only the timeout path punishes inaction
func Evaluate(s *GameState, button int, pressed bool) (Outcome, Transition) {
	if !pressed {
		return OutcomeNoInput, TransitionStay
	}

	if button == s.ActiveTarget {
		s.Score += constants.HitPoints
		if s.Score >= s.NextPhaseThreshold {
			return OutcomeHit, TransitionPhaseAdvance
		}
		return OutcomeHit, TransitionNewRound
	}

	return OutcomeMiss, loseLife(s)
}

// TimedOut reports whether the active target outlived the reaction budget
func TimedOut(s GameState, now time.Time) bool {
	if !s.HasTarget() {
		return false
	}
	return now.Sub(s.TargetActivatedAt) > s.ReactionBudget
}

// ApplyTimeout counts an expired target as a miss with no button involved
func ApplyTimeout(s *GameState) Transition {
	return loseLife(s)
}

func loseLife(s *GameState) Transition {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives <= 0 {
		return TransitionGameOver
	}
	return TransitionNewRound
}
