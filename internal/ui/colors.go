package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for readings and status.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy.
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Panel colors for the simulated display: white glyphs on a blue backlight.
const (
	ColorPanelText   lipgloss.Color = "#E8F0FF"
	ColorPanelBg     lipgloss.Color = "#1F3A93"
	ColorPanelBezel  lipgloss.Color = "#4A4A4A"
	ColorPanelAccent lipgloss.Color = "#7FB3FF"
)

// Thresholds for resource readings, in percent.
const (
	WarningThreshold  = 60.0
	CriticalThreshold = 80.0
)

// Temperature thresholds, in degrees Celsius.
const (
	TempWarning  = 60.0
	TempCritical = 75.0
)

// ThresholdColor colors a percentage where higher is worse.
func ThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorError
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// TempColor colors a CPU temperature.
func TempColor(celsius float64) lipgloss.Color {
	switch {
	case celsius >= TempCritical:
		return ColorError
	case celsius >= TempWarning:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

var colorsEnabled = true

// DisableColors strips color from everything styled through this package.
func DisableColors() {
	colorsEnabled = false
}

// EnableColors restores colored output.
func EnableColors() {
	colorsEnabled = true
}

// ColorsEnabled reports whether styled output is on.
func ColorsEnabled() bool {
	return colorsEnabled
}

// Paint renders s in color c, or returns s unchanged when colors are off.
func Paint(c lipgloss.Color, s string) string {
	if !colorsEnabled {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// Label renders a muted, bold field label.
func Label(s string) string {
	if !colorsEnabled {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Bold(true).Render(s)
}
