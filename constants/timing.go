package constants

import "time"

// Game Loop Timing
const (
	// TickInterval is the idle period between loop iterations
	TickInterval = 10 * time.Millisecond

	// DebounceWindow is the minimum gap between two accepted presses of one button
	// A press is accepted only when strictly more than this has elapsed
	DebounceWindow = 300 * time.Millisecond
)

// Countdown
const (
	// CountdownFrom is the first digit of the 3-2-1 countdown
	CountdownFrom = 3

	// CountdownStep is how long each countdown digit stays on the displays
	CountdownStep = 1 * time.Second

	// ReadyPause is the pause on the score display before the first target lights
	ReadyPause = 500 * time.Millisecond
)

// Phase Transition Flash
const (
	PhaseFlashCycles = 3
	PhaseFlashPause  = 150 * time.Millisecond
)

// Game Over Sequence
const (
	// GameOverHold is how long the final score stays before blinking starts
	GameOverHold = 3 * time.Second

	GameOverBlinkCycles = 5
	GameOverBlinkPause  = 200 * time.Millisecond
)

// Terminal Board
const (
	// KeyHoldDuration is how long a key press holds a simulated button line low
	// Terminals report key presses only, never releases
	KeyHoldDuration = 120 * time.Millisecond

	// ConsoleLines is the number of console lines kept by the terminal board
	ConsoleLines = 6
)
