package board

import (
	"sync"

	"github.com/lixenwraith/whack-a-mole/segment"
)

// Memory is an in-process Board that records every output
// Buttons idle high; Press pulls a line low until Release
type Memory struct {
	mu sync.Mutex

	targets  [TargetCount]bool
	levels   [TargetCount]bool
	digits   [2]rune
	lines    []string
	invalid  []rune
	setCalls int
}

// NewMemory creates a Memory board with every button released and displays blank
func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.levels {
		m.levels[i] = true
	}
	m.digits = [2]rune{segment.Blank, segment.Blank}
	return m
}

// RenderDigit implements Display
func (m *Memory) RenderDigit(id DisplayID, digit rune) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := segment.Decode(digit); err != nil {
		m.invalid = append(m.invalid, digit)
		m.lines = append(m.lines, "display "+id.String()+": "+err.Error())
		return
	}
	if id == DisplayUnits || id == DisplayTens {
		m.digits[id] = digit
	}
}

// ClearAll implements Display
func (m *Memory) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.digits = [2]rune{segment.Blank, segment.Blank}
}

// Set implements Targets
func (m *Memory) Set(target int, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.targets[target] = on
	m.setCalls++
}

// Read implements Buttons
func (m *Memory) Read(button int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels[button]
}

// Println implements Console
func (m *Memory) Println(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, line)
}

// Press pulls a button line low
func (m *Memory) Press(button int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[button] = false
}

// Release lets a button line float back high
func (m *Memory) Release(button int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[button] = true
}

// Targets returns a copy of the LED outputs
func (m *Memory) Targets() [TargetCount]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.targets
}

// LitTargets returns the indices of lit LEDs
func (m *Memory) LitTargets() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var lit []int
	for i, on := range m.targets {
		if on {
			lit = append(lit, i)
		}
	}
	return lit
}

// Digit returns what a display currently shows
func (m *Memory) Digit(id DisplayID) rune {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.digits[id]
}

// Lines returns a copy of console output
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

// InvalidDigits returns rejected RenderDigit arguments
func (m *Memory) InvalidDigits() []rune {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]rune(nil), m.invalid...)
}

// SetCalls returns the number of Set calls so far
func (m *Memory) SetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setCalls
}
