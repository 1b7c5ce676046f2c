package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/hrportal/internal/content"
	"github.com/javiermolinar/hrportal/internal/payslip"
	"github.com/javiermolinar/hrportal/internal/portal"
)

// PrintOpts configures panel printing behavior.
type PrintOpts struct {
	Symbol string // Currency symbol
	Width  int    // Output width; 0 uses the terminal width
}

// width returns the effective output width.
func (o PrintOpts) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return termWidth()
}

// barWidth picks a bar width that fits next to labels and percentages.
func (o PrintOpts) barWidth() int {
	return max(min(o.width()-16, 30), 10)
}

// PrintPanel prints the summary of a single tab.
func PrintPanel(w io.Writer, c content.Portal, tab portal.Tab, opts PrintOpts) {
	fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(tab.Title()))

	switch tab {
	case portal.TabDashboard:
		PrintDashboard(w, c.Engagement, opts)
	case portal.TabLearning:
		PrintLearning(w, c.Learning, opts)
	case portal.TabWellness:
		PrintWellness(w, c.Wellness, opts)
	case portal.TabCompensation:
		PrintCompensation(w, c.Compensation, opts)
	}
}

// PrintDashboard prints the engagement score and its weekly trend.
func PrintDashboard(w io.Writer, e content.Engagement, opts PrintOpts) {
	fmt.Fprintf(w, "Engagement Score: %s\n", formatStats(fmt.Sprintf("%d%%", e.Score)))
	wrapAndPrint(w, e.Caption, "", opts.width(), formatMuted)
	fmt.Fprintln(w)

	barW := opts.barWidth()
	for _, p := range e.Trend {
		fmt.Fprintf(w, "  %-4s %s\n", p.Day, TrendBar(p.Score, barW))
	}
	if lo, hi := e.TrendRange(); len(e.Trend) > 0 {
		fmt.Fprintf(w, "  %s\n", formatMuted(fmt.Sprintf("Range: %d%% - %d%%", lo, hi)))
	}
}

// PrintLearning prints course progress and available modules.
func PrintLearning(w io.Writer, l content.Learning, opts PrintOpts) {
	fmt.Fprintln(w, formatHeader(l.Course))
	fmt.Fprintf(w, "%s %s\n", ProgressBar(l.Completed, opts.barWidth()), formatStats(content.PercentLabel(l.Completed)))
	fmt.Fprintln(w)
	wrapAndPrint(w, l.Note, "", opts.width(), nil)

	if len(l.Modules) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatHeader("Modules"))
		for i, m := range l.Modules {
			fmt.Fprintf(w, "  %d. %s\n", i+1, m)
		}
	}
}

// PrintWellness prints the wellness insight and tips.
func PrintWellness(w io.Writer, wl content.Wellness, opts PrintOpts) {
	wrapAndPrint(w, wl.Insight, "! ", opts.width(), formatInsight)
	fmt.Fprintln(w)
	wrapAndPrint(w, wl.Tips, "", opts.width(), nil)
}

// PrintCompensation prints salary and bonus figures.
func PrintCompensation(w io.Writer, c content.Compensation, opts PrintOpts) {
	fmt.Fprintf(w, "%-19s %s / month\n", "Base Salary:", formatStats(c.BaseMonthly.Format(opts.Symbol)))
	fmt.Fprintf(w, "%-19s %s\n", "Performance Bonus:", formatStats(c.PerformanceBonus.Format(opts.Symbol)))
	fmt.Fprintf(w, "%-19s %s\n", "Wellness Bonus:", formatStats(c.WellnessBonus.Format(opts.Symbol)))
	fmt.Fprintf(w, "%-19s %s\n", "Total Bonus:", formatStats(c.TotalBonus().Format(opts.Symbol)))
	fmt.Fprintln(w)
	wrapAndPrint(w, c.Note, "", opts.width(), formatMuted)
}

// printPayslip prints the payslip rows with the net pay highlighted.
func printPayslip(w io.Writer, d payslip.Document) {
	title := "Payslip"
	if d.Employee != "" {
		title += " - " + d.Employee
	}
	fmt.Fprintln(w, formatHeader(title))

	lines := d.Lines()
	for i, line := range lines {
		value := line[1]
		if i == len(lines)-1 {
			value = formatStats(value)
		}
		fmt.Fprintf(w, "  %-11s %s\n", line[0]+":", value)
	}
}

// TrendBar creates an ASCII bar for a percentage score.
func TrendBar(score, width int) string {
	score = min(max(score, 0), 100)
	filled := (score * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatAccent(bar), formatStats(fmt.Sprintf("%3d%%", score)))
}

// ProgressBar creates an ASCII bar for a 0..1 completion ratio.
func ProgressBar(ratio float64, width int) string {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio*float64(width) + 0.5)
	return "[" + formatAccent(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled) + "]"
}

// wrapAndPrint wraps text to width and prints with the given prefix.
func wrapAndPrint(w io.Writer, text, prefix string, width int, format func(string) string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}
	if format == nil {
		format = func(s string) string { return s }
	}

	width -= len(prefix)
	continuationPrefix := strings.Repeat(" ", len(prefix))
	line := ""
	first := true

	flush := func() {
		p := continuationPrefix
		if first {
			p = prefix
		}
		fmt.Fprintln(w, format(p+line))
		first = false
	}

	for _, word := range words {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			flush()
			line = word
		}
	}
	flush()
}
