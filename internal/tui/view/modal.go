package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render dialog frames and buttons.
type ModalStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Footer       lipgloss.Style
	Body         lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// RenderModalFrame renders a dialog with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	b.WriteString(styles.Header.Render(styles.Title.Render(title)))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.Footer.Render(footer))
	}

	return styles.Frame.Render(b.String())
}

// RenderModalButtons renders a row of dialog buttons with the first one
// active, and the span each button covers in the row.
func RenderModalButtons(styles ModalStyles, labels ...string) (string, []Span) {
	return renderButtons(styles.Button, styles.ButtonActive, styles.Body, labels)
}

// RenderModalButtonsCompact renders buttons with one cell of padding so
// longer rows fit the dialog width.
func RenderModalButtonsCompact(styles ModalStyles, labels ...string) (string, []Span) {
	return renderButtons(styles.Button.Padding(0, 1), styles.ButtonActive.Padding(0, 1), styles.Body, labels)
}

func renderButtons(button, active, sep lipgloss.Style, labels []string) (string, []Span) {
	var b strings.Builder
	spans := make([]Span, 0, len(labels))
	gap := sep.Render(" ")

	x := 0
	for i, label := range labels {
		style := button
		if i == 0 {
			style = active
		} else {
			b.WriteString(gap)
			x += lipgloss.Width(gap)
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		spans = append(spans, Span{Start: x, End: x + w})
		b.WriteString(rendered)
		x += w
	}
	return b.String(), spans
}

// ModalFooterOrigin returns the cell where the footer row of a dialog
// rendered by RenderModalFrame starts, relative to the dialog's top-left.
func ModalFooterOrigin(dialog string, styles ModalStyles) (int, int) {
	x := styles.Frame.GetBorderLeftSize() + styles.Frame.GetPaddingLeft() +
		styles.Footer.GetMarginLeft() + styles.Footer.GetBorderLeftSize() + styles.Footer.GetPaddingLeft()
	y := lastContentRow(dialog, styles.Frame) -
		styles.Footer.GetMarginBottom() - styles.Footer.GetBorderBottomSize() - styles.Footer.GetPaddingBottom()
	return x, y
}

// lastContentRow returns the row of the last content line of a block
// rendered with frame.
func lastContentRow(block string, frame lipgloss.Style) int {
	return lipgloss.Height(block) - 1 - frame.GetMarginBottom() - frame.GetBorderBottomSize() - frame.GetPaddingBottom()
}
