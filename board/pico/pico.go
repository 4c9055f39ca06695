//go:build rp2040

// Package pico drives the physical board on a Raspberry Pi Pico under TinyGo
package pico

import (
	"machine"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/segment"
)

// Board implements board.Board on rp2040 GPIO
type Board struct {
	displays [2]*[7]machine.Pin
}

var _ board.Board = (*Board)(nil)

// New configures every pin and returns a dark board
func New() *Board {
	for _, p := range ledPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	for _, p := range buttonPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	b := &Board{}
	b.displays[board.DisplayUnits] = &unitsPins
	b.displays[board.DisplayTens] = &tensPins
	for _, pins := range b.displays {
		for _, p := range pins {
			p.Configure(machine.PinConfig{Mode: machine.PinOutput})
			p.Low()
		}
	}
	return b
}

// Set implements board.Targets
func (b *Board) Set(target int, on bool) {
	ledPins[target].Set(on)
}

// Read implements board.Buttons
func (b *Board) Read(button int) bool {
	return buttonPins[button].Get()
}

// RenderDigit implements board.Display
// Common cathode: driving a segment high lights it
func (b *Board) RenderDigit(id board.DisplayID, digit rune) {
	p, err := segment.Decode(digit)
	if err != nil {
		println("display", id.String()+":", err.Error())
		return
	}
	for s, pin := range b.displays[id] {
		pin.Set(p.Lit(segment.Segment(s)))
	}
}

// ClearAll implements board.Display
func (b *Board) ClearAll() {
	for _, pins := range b.displays {
		for _, p := range pins {
			p.Low()
		}
	}
}

// Println implements board.Console over the USB serial console
func (b *Board) Println(line string) {
	println(line)
}
