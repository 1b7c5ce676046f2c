package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	StatusText  string
	HelpText    string // pre-rendered help view
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// RenderFooter renders the status line above the help line, each clipped to
// the inner width.
func RenderFooter(model FooterModel) string {
	statusLine := footerLine(model.InnerW, model.StatusStyle, model.StatusText)
	helpLine := footerLine(model.InnerW, model.HelpStyle, model.HelpText)
	return statusLine + "\n" + helpLine
}

// footerLine renders content in a line of exactly width cells. lipgloss
// widths include padding, so only the padding is taken off the text.
func footerLine(width int, style lipgloss.Style, content string) string {
	textWidth := max(width-style.GetHorizontalPadding(), 0)
	if textWidth > 0 {
		content = ansi.Truncate(content, textWidth, "…")
	}
	return style.Width(max(width, 0)).MaxHeight(1).Render(content)
}
