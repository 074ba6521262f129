//go:build !linux

package gpio

import (
	"runtime"

	"github.com/rileyhilliard/lcdstat/internal/errors"
)

// OpenChip is only supported on Linux.
func OpenChip(path string) (Chip, error) {
	return nil, errors.New(errors.ErrGPIO,
		"GPIO character devices are not available on "+runtime.GOOS,
		"Use 'lcdstat simulate' to try the display without hardware")
}
