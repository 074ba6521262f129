// Package ui holds the terminal styling shared by the simulator and the
// stats printer: a small ANSI palette, threshold-coloured bars and the
// bordered panel that mimics the character LCD.
//
// Colors are ANSI codes so output degrades sensibly on basic terminals:
//
//	ColorSuccess (green)  - healthy readings
//	ColorWarning (yellow) - elevated readings
//	ColorError   (red)    - critical readings, failures
//	ColorMuted   (gray)   - labels and help text
//
// Use DisableColors for plain output when stdout is not a terminal.
package ui
