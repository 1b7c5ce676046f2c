package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelStyles groups styles for the tab panels.
type PanelStyles struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	Body       lipgloss.Style
	Caption    lipgloss.Style
	Score      lipgloss.Style
	Insight    lipgloss.Style
	Label      lipgloss.Style
	Button     lipgloss.Style
	TrendBar   lipgloss.Style
	TrendTrack lipgloss.Style
}

// TrendBar is one bar of the engagement chart.
type TrendBar struct {
	Label string
	Score int // percent
}

// DashboardModel contains the fields needed to render the dashboard panel.
type DashboardModel struct {
	Score   int
	Caption string
	Trend   []TrendBar
}

// LearningModel contains the fields needed to render the learning panel.
type LearningModel struct {
	Course   string
	Progress string // Pre-rendered progress bar
	Percent  string
	Note     string
	Button   string
}

// WellnessModel contains the fields needed to render the wellness panel.
type WellnessModel struct {
	Insight string
	Tips    string
	Button  string
}

// CompensationModel contains the fields needed to render the compensation panel.
type CompensationModel struct {
	Rows   [][2]string
	Note   string
	Button string
}

// RenderPanel frames a panel body with its title at the given outer width.
func RenderPanel(title, body string, width int, styles PanelStyles) string {
	frameW, _ := styles.Frame.GetFrameSize()
	innerW := max(width-frameW, 0)

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(body)

	return styles.Frame.Width(innerW + styles.Frame.GetHorizontalPadding()).Render(b.String())
}

// PanelInnerWidth returns the usable content width inside a panel of width.
func PanelInnerWidth(width int, styles PanelStyles) int {
	frameW, _ := styles.Frame.GetFrameSize()
	return max(width-frameW, 0)
}

// PanelButtonSpan returns the row and cells covered by the button that ends
// a panel rendered by RenderPanel, relative to the panel's top-left.
func PanelButtonSpan(panel, button string, styles PanelStyles) (int, Span) {
	x := styles.Frame.GetBorderLeftSize() + styles.Frame.GetPaddingLeft()
	w := lipgloss.Width(styles.Button.Render(button))
	return lastContentRow(panel, styles.Frame), Span{Start: x, End: x + w}
}

// RenderDashboardBody renders the engagement score and the weekly trend.
func RenderDashboardBody(model DashboardModel, width int, styles PanelStyles) string {
	var b strings.Builder

	b.WriteString(styles.Body.Render("Engagement Score: ") + styles.Score.Render(fmt.Sprintf("%d%%", model.Score)))
	b.WriteString("\n")
	b.WriteString(styles.Caption.Render(wrap(model.Caption, width)))
	b.WriteString("\n\n")

	labelW := 0
	for _, bar := range model.Trend {
		labelW = max(labelW, lipgloss.Width(bar.Label))
	}
	// label, space, bar, space, "100%"
	barW := max(width-labelW-6, 4)
	for i, bar := range model.Trend {
		if i > 0 {
			b.WriteString("\n")
		}
		filled := min(max(bar.Score*barW/100, 0), barW)
		b.WriteString(styles.Body.Render(fmt.Sprintf("%-*s ", labelW, bar.Label)))
		b.WriteString(styles.TrendBar.Render(strings.Repeat("█", filled)))
		b.WriteString(styles.TrendTrack.Render(strings.Repeat("░", barW-filled)))
		b.WriteString(styles.Caption.Render(fmt.Sprintf(" %3d%%", bar.Score)))
	}

	return b.String()
}

// RenderLearningBody renders course progress and the modules button.
func RenderLearningBody(model LearningModel, width int, styles PanelStyles) string {
	var b strings.Builder

	b.WriteString(styles.Label.Render(model.Course))
	b.WriteString("\n")
	b.WriteString(model.Progress)
	b.WriteString("\n")
	b.WriteString(styles.Caption.Render(model.Percent))
	b.WriteString("\n\n")
	b.WriteString(styles.Body.Render(wrap(model.Note, width)))
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render(model.Button))

	return b.String()
}

// RenderWellnessBody renders the wellness insight and the leave button.
func RenderWellnessBody(model WellnessModel, width int, styles PanelStyles) string {
	var b strings.Builder

	b.WriteString(styles.Insight.Render(wrap(model.Insight, width)))
	b.WriteString("\n\n")
	b.WriteString(styles.Body.Render(wrap(model.Tips, width)))
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render(model.Button))

	return b.String()
}

// RenderCompensationBody renders salary rows and the payslip button.
func RenderCompensationBody(model CompensationModel, width int, styles PanelStyles) string {
	var b strings.Builder

	labelW := 0
	for _, row := range model.Rows {
		labelW = max(labelW, lipgloss.Width(row[0]))
	}
	for _, row := range model.Rows {
		b.WriteString(styles.Label.Render(fmt.Sprintf("%-*s ", labelW+1, row[0]+":")))
		b.WriteString(styles.Body.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Caption.Render(wrap(model.Note, width)))
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render(model.Button))

	return b.String()
}

// wrap soft-wraps text at word boundaries to width cells.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
