// Package gpio defines the line-control capability the display and button
// drivers are written against: request a group of lines by offset in one
// direction, read or drive individual lines, release the group.
//
// The Linux backend (OpenChip) talks to the GPIO character device. Tests use
// the recording fake in internal/gpio/testing.
package gpio

// Direction selects whether a requested line group is read or driven.
type Direction int

const (
	Input Direction = iota
	Output
)

// String returns a human-readable direction label.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// DefaultChip is the GPIO character device on Raspberry Pi class boards.
const DefaultChip = "/dev/gpiochip0"

// Lines is a requested group of GPIO lines, addressed by chip offset.
type Lines interface {
	// Set drives an output line high (true) or low (false).
	Set(offset int, value bool) error
	// Get reads the current logical level of a line.
	Get(offset int) (bool, error)
	// Close releases the group back to the kernel.
	Close() error
}

// Chip is an opened GPIO controller that hands out line groups.
type Chip interface {
	Request(consumer string, offsets []int, dir Direction) (Lines, error)
	Close() error
}
