package engine

import (
	"time"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/constants"
)

// Poll scans buttons 0..n-1 and returns the first actionable press
// A button is actionable when its line is low and strictly more than
// DebounceWindow has passed since its last accepted press
// Scanning stops at the first hit, so lower indices win ties
func Poll(buttons board.Buttons, table *DebounceTable, now time.Time) (int, bool) {
	for i := 0; i < constants.TargetCount; i++ {
		pressed := !buttons.Read(i)
		if !pressed {
			continue
		}
		if now.Sub(table[i].LastAcceptedAt) > constants.DebounceWindow {
			table[i].LastAcceptedAt = now
			return i, true
		}
	}
	return 0, false
}
