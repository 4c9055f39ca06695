// Package board defines the hardware collaborators the game drives
// and the implementations that are not tied to a terminal or a chip.
package board

import "github.com/lixenwraith/whack-a-mole/constants"

// DisplayID selects one of the two seven-segment digits
type DisplayID int

const (
	// DisplayUnits is the right-hand, least significant digit
	DisplayUnits DisplayID = iota
	// DisplayTens is the left-hand digit
	DisplayTens
)

func (d DisplayID) String() string {
	switch d {
	case DisplayUnits:
		return "units"
	case DisplayTens:
		return "tens"
	default:
		return "display?"
	}
}

// Display renders single digits on the seven-segment pair
// Unknown digit runes are logged and ignored, never fatal
type Display interface {
	RenderDigit(id DisplayID, digit rune)
	ClearAll()
}

// Targets drives the LED targets
type Targets interface {
	Set(target int, on bool)
}

// Buttons reads button line levels
// Lines are active-low: false means the button is pressed
type Buttons interface {
	Read(button int) bool
}

// Console receives human-readable status lines
type Console interface {
	Println(line string)
}

// Board bundles every collaborator the game needs
type Board interface {
	Display
	Targets
	Buttons
	Console
}

// TargetCount re-exports the board width for implementations
const TargetCount = constants.TargetCount
