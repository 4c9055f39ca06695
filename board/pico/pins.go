//go:build rp2040

package pico

import "machine"

// Target LEDs, yellow blue red
var ledPins = [3]machine.Pin{machine.GP16, machine.GP17, machine.GP15}

// Buttons, pulled up, pressed reads low
var buttonPins = [3]machine.Pin{machine.GP13, machine.GP18, machine.GP12}

// Segment pins in a..g order
var (
	unitsPins = [7]machine.Pin{
		machine.GP0, machine.GP1, machine.GP2, machine.GP3,
		machine.GP4, machine.GP6, machine.GP5,
	}
	tensPins = [7]machine.Pin{
		machine.GP7, machine.GP8, machine.GP9, machine.GP10,
		machine.GP11, machine.GP19, machine.GP20,
	}
)
