package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Foreground(ColorPanelText).
			Background(ColorPanelBg).
			Padding(0, 1)

	bezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPanelBezel).
			Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
			Foreground(ColorPanelAccent).
			Bold(true)
)

// RenderPanel draws display rows inside a bezel with an optional caption
// above them. Rows are shown verbatim so column alignment is preserved.
func RenderPanel(caption string, rows ...string) string {
	if !colorsEnabled {
		var b strings.Builder
		if caption != "" {
			b.WriteString(caption + "\n")
		}
		width := 0
		for _, r := range rows {
			if len(r) > width {
				width = len(r)
			}
		}
		edge := "+" + strings.Repeat("-", width+2) + "+"
		b.WriteString(edge + "\n")
		for _, r := range rows {
			b.WriteString("| " + r + strings.Repeat(" ", width-len(r)) + " |\n")
		}
		b.WriteString(edge)
		return b.String()
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = panelStyle.Render(r)
	}
	body := bezelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if caption == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, captionStyle.Render(caption), body)
}
