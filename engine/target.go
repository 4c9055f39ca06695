package engine

import (
	"time"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/constants"
)

// ActivateNewTarget lights a uniformly random target and stamps its activation time
// Repeats of the previous target are allowed
// Other targets are switched off before the new one lights, so two are never on together
func ActivateNewTarget(s *GameState, leds board.Targets, rng RandomSource, now time.Time) int {
	next := rng.IntN(constants.TargetCount)

	for i := 0; i < constants.TargetCount; i++ {
		if i != next {
			leds.Set(i, false)
		}
	}
	leds.Set(next, true)

	s.ActiveTarget = next
	s.TargetActivatedAt = now
	return next
}

// ledBank mirrors target outputs so sequences can toggle them
type ledBank struct {
	out board.Targets
	lit [constants.TargetCount]bool
}

// Set implements board.Targets
func (b *ledBank) Set(target int, on bool) {
	b.lit[target] = on
	b.out.Set(target, on)
}

func (b *ledBank) setAll(on bool) {
	for i := range b.lit {
		b.Set(i, on)
	}
}

func (b *ledBank) toggleAll() {
	for i, on := range b.lit {
		b.Set(i, !on)
	}
}
