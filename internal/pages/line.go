package pages

import "strings"

// Width is the number of character cells in a display row.
const Width = 16

// Line is one display row: always Width printable ASCII bytes.
type Line [Width]byte

// NewLine truncates s to Width bytes, pads it with spaces and replaces
// anything outside printable ASCII with a space.
func NewLine(s string) Line {
	var l Line
	for i := range l {
		c := byte(' ')
		if i < len(s) {
			c = s[i]
		}
		if c < 0x20 || c > 0x7E {
			c = ' '
		}
		l[i] = c
	}
	return l
}

// String returns the row as a 16 character string.
func (l Line) String() string {
	return string(l[:])
}

// Trimmed returns the row without trailing padding.
func (l Line) Trimmed() string {
	return strings.TrimRight(l.String(), " ")
}
