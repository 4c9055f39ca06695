// Package segment holds the seven-segment digit table shared by every board
package segment

import (
	"errors"
	"fmt"
)

// Segment identifies one bar of a seven-segment digit
type Segment uint8

// Segment order a..g, clockwise from the top bar, g is the middle bar
const (
	A Segment = iota
	B
	C
	D
	E
	F
	G
	Count
)

// Blank is the digit rune that turns every segment off
const Blank = ' '

// ErrInvalidDigit is returned by Decode for runes outside '0'-'9' and Blank
var ErrInvalidDigit = errors.New("invalid digit")

// Pattern is a lit-segment bitmask, bit n set means Segment(n) is lit
type Pattern uint8

// Lit reports whether segment s is on
func (p Pattern) Lit(s Segment) bool {
	return p&(1<<s) != 0
}

var names = [Count]string{"a", "b", "c", "d", "e", "f", "g"}

func (s Segment) String() string {
	if s < Count {
		return names[s]
	}
	return fmt.Sprintf("Segment(%d)", uint8(s))
}

// pattern builds a Pattern from segments listed a..g
func pattern(bits ...uint8) Pattern {
	var p Pattern
	for i, b := range bits {
		if b != 0 {
			p |= 1 << i
		}
	}
	return p
}

var digits = [10]Pattern{
	pattern(1, 1, 1, 1, 1, 1, 0), // 0
	pattern(0, 1, 1, 0, 0, 0, 0), // 1
	pattern(1, 1, 0, 1, 1, 0, 1), // 2
	pattern(1, 1, 1, 1, 0, 0, 1), // 3
	pattern(0, 1, 1, 0, 0, 1, 1), // 4
	pattern(1, 0, 1, 1, 0, 1, 1), // 5
	pattern(1, 0, 1, 1, 1, 1, 1), // 6
	pattern(1, 1, 1, 0, 0, 0, 0), // 7
	pattern(1, 1, 1, 1, 1, 1, 1), // 8
	pattern(1, 1, 1, 1, 0, 1, 1), // 9
}

// Decode maps a digit rune to its segment pattern
func Decode(r rune) (Pattern, error) {
	switch {
	case r == Blank:
		return 0, nil
	case r >= '0' && r <= '9':
		return digits[r-'0'], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, r)
	}
}

// Digit returns the rune for a value 0-9
// Values outside the range produce a rune that Decode rejects
func Digit(v int) rune {
	if v < 0 || v > 9 {
		return '?'
	}
	return rune('0' + v)
}
