package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/constants"
	"github.com/lixenwraith/whack-a-mole/segment"
	"github.com/lixenwraith/whack-a-mole/status"
)

// Layout, in cells from the top-left corner
const (
	rowTitle   = 0
	rowStatus  = 1
	rowDigits  = 3
	rowTargets = 10
	rowLabels  = 11
	rowState   = 13
	rowConsole = 15

	digitWidth  = 4
	digitHeight = 5
	digitGap    = 2
	digitsX     = 14

	targetSpacing = 12
	targetsX      = 4
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSegOn   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLife    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHeld    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)

	// Yellow, blue, red, left to right
	targetColors = [constants.TargetCount]tcell.Color{tcell.ColorYellow, tcell.ColorBlue, tcell.ColorRed}
)

// draw repaints the whole board; caller holds mu
func (b *Board) draw() {
	b.screen.Clear()

	b.text(2, rowTitle, "WHACK-A-MOLE", styleTitle)
	b.drawStatus()

	for id := 0; id < constants.DisplayCount; id++ {
		b.drawDigit(digitX(id), rowDigits, b.digits[id])
	}

	now := b.now()
	for i := 0; i < constants.TargetCount; i++ {
		x := targetX(i)
		if b.leds[i] {
			style := tcell.StyleDefault.Foreground(targetColors[i]).Bold(true)
			b.text(x, rowTargets, "( ● )", style)
		} else {
			b.text(x, rowTargets, "( ○ )", styleDim)
		}

		label := fmt.Sprintf("[%c]", b.keys[i])
		labelStyle := styleText
		if now.Before(b.heldUntil[i]) {
			labelStyle = styleHeld
		}
		b.text(x+1, rowLabels, label, labelStyle)
	}

	b.text(2, rowState, "state "+b.metrics.String(status.KeyState), styleDim)
	for i, line := range b.lines {
		b.text(2, rowConsole+i, line, styleText)
	}

	_, h := b.screen.Size()
	keys := make([]string, len(b.keys))
	for i, k := range b.keys {
		keys[i] = string(k)
	}
	b.text(2, h-1, "keys "+strings.Join(keys, " ")+"  ·  q/esc quit", styleDim)

	b.screen.Show()
}

func (b *Board) drawStatus() {
	m := b.metrics
	x := b.text(2, rowStatus, fmt.Sprintf("phase %d  lives ", m.Int(status.KeyPhase)), styleText)

	lives := int(m.Int(status.KeyLives))
	for i := 0; i < constants.StartingLives; i++ {
		if i < lives {
			x = b.text(x, rowStatus, "♥", styleLife)
		} else {
			x = b.text(x, rowStatus, "♡", styleDim)
		}
	}

	line := fmt.Sprintf("  budget %dms  next %d", m.Int(status.KeyBudgetMs), m.Int(status.KeyThreshold))
	if best := m.Int(status.KeyBest); best > 0 {
		line += fmt.Sprintf("  best %d", best)
	}
	b.text(x, rowStatus, line, styleText)
}

// drawDigit renders one seven-segment digit in a 4x5 cell box
//
//	 ━━
//	┃  ┃
//	 ━━
//	┃  ┃
//	 ━━
func (b *Board) drawDigit(x, y int, p segment.Pattern) {
	seg := func(s segment.Segment) tcell.Style {
		if p.Lit(s) {
			return styleSegOn
		}
		return styleDim
	}

	b.text(x+1, y, "━━", seg(segment.A))
	b.set(x+3, y+1, '┃', seg(segment.B))
	b.set(x+3, y+3, '┃', seg(segment.C))
	b.text(x+1, y+4, "━━", seg(segment.D))
	b.set(x, y+3, '┃', seg(segment.E))
	b.set(x, y+1, '┃', seg(segment.F))
	b.text(x+1, y+2, "━━", seg(segment.G))
}

// digitX places tens on the left and units on the right
func digitX(id int) int {
	return digitsX + (constants.DisplayCount-1-id)*(digitWidth+digitGap)
}

func targetX(i int) int {
	return targetsX + i*targetSpacing
}

func (b *Board) set(x, y int, r rune, style tcell.Style) {
	b.screen.SetContent(x, y, r, nil, style)
}

// text writes s at (x, y) and returns the column after it
func (b *Board) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
