package engine

import (
	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/constants"
	"github.com/lixenwraith/whack-a-mole/segment"
)

// ShowScore renders score modulo 100, tens on the left display and units on the right
func ShowScore(d board.Display, score int) {
	v := score % constants.ScoreModulo
	d.RenderDigit(board.DisplayTens, segment.Digit(v/10))
	d.RenderDigit(board.DisplayUnits, segment.Digit(v%10))
}

// ShowOnBoth renders the same digit on both displays, used by countdowns
func ShowOnBoth(d board.Display, v int) {
	r := segment.Digit(v)
	d.RenderDigit(board.DisplayUnits, r)
	d.RenderDigit(board.DisplayTens, r)
}
