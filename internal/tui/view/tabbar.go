package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span is a horizontal cell range [Start, End).
type Span struct {
	Start int
	End   int
}

// Contains reports whether x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// TabBarModel contains the labels of the tab bar and the active index.
type TabBarModel struct {
	Labels []string
	Active int
}

// TabBarStyles groups styles for the tab bar.
type TabBarStyles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Gap       lipgloss.Style
}

// RenderTabBar renders the tab labels on one line and returns the cell span
// each label occupies, relative to the start of the bar.
func RenderTabBar(model TabBarModel, styles TabBarStyles) (string, []Span) {
	var b strings.Builder
	spans := make([]Span, 0, len(model.Labels))
	gap := styles.Gap.Render(" ")
	gapW := lipgloss.Width(gap)

	x := 0
	for i, label := range model.Labels {
		if i > 0 {
			b.WriteString(gap)
			x += gapW
		}
		style := styles.Tab
		if i == model.Active {
			style = styles.ActiveTab
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		spans = append(spans, Span{Start: x, End: x + w})
		b.WriteString(rendered)
		x += w
	}

	return b.String(), spans
}
