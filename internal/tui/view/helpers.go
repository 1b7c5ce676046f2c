package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadLinesWithBackground pads content to exactly height lines of at least
// width cells, filling the gaps with bg. Longer lines are left as is.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}

	fill := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + fill.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}
