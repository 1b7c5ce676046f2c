package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Scores and amounts: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Bars and accents: bold cyan
	colorAccent = color.New(color.FgCyan, color.Bold)

	// Insight/alerts: yellow to make it pop
	colorInsight = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for scores and amounts.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatAccent formats bar fills and labels.
func formatAccent(s string) string {
	return colorAccent.Sprint(s)
}

// formatInsight formats text for wellness insights.
func formatInsight(s string) string {
	return colorInsight.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// suspendColor disables color output and returns a func restoring the
// previous setting.
func suspendColor() func() {
	prev := color.NoColor
	color.NoColor = true
	return func() { color.NoColor = prev }
}
