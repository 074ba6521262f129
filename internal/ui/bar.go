package ui

import (
	"fmt"
	"strings"
)

// Bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts splits width cells into filled and empty for percent.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	filled = int(ClampPercent(percent) / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return filled, width - filled
}

// RenderBar draws a bracketed bar colored by ThresholdColor, followed by
// the percentage:
//
//	[████████░░░░░░░░]  50%
func RenderBar(percent float64, width int) string {
	filled, empty := CalculateBarCounts(percent, width)
	bar := strings.Repeat(string(BarFilled), filled) + strings.Repeat(string(BarEmpty), empty)
	return fmt.Sprintf("[%s] %3.0f%%", Paint(ThresholdColor(percent), bar), ClampPercent(percent))
}
