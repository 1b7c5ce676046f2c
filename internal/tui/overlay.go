package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Backdrop box limits before it grows to fit the dialog.
const (
	overlayMinWidth  = 18
	overlayMinHeight = 5
	overlayMaxWidth  = 48
	overlayMaxHeight = 12
)

// OverlayModel paints an opaque backdrop box over the app and centers a
// dialog inside it.
type OverlayModel struct {
	bgColor lipgloss.Color
}

// NewOverlayModel returns an overlay with the given backdrop color.
func NewOverlayModel(bg lipgloss.Color) OverlayModel {
	return OverlayModel{bgColor: bg}
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// overlayLayout is where the backdrop box and the dialog land on screen.
type overlayLayout struct {
	box     Rect
	content Rect
}

func (o OverlayModel) layout(width, height int, lines []string) (overlayLayout, bool) {
	if width <= 0 || height <= 0 {
		return overlayLayout{}, false
	}

	contentW, contentH := blockSize(lines)
	boxW, boxH := o.boxSize(width, height)
	boxW = min(max(boxW, contentW), width)
	boxH = min(max(boxH, contentH), height)
	if boxW <= 0 || boxH <= 0 {
		return overlayLayout{}, false
	}
	contentW = min(contentW, boxW)
	contentH = min(contentH, boxH)

	box := Rect{X: max((width-boxW)/2, 0), Y: max((height-boxH)/2, 0), W: boxW, H: boxH}
	return overlayLayout{
		box: box,
		content: Rect{
			X: box.X + max((boxW-contentW)/2, 0),
			Y: box.Y + max((boxH-contentH)/2, 0),
			W: contentW,
			H: contentH,
		},
	}, true
}

// ContentBounds returns the screen region covered by content when rendered
// over a width x height base. The zero Rect is returned when nothing fits.
func (o OverlayModel) ContentBounds(width, height int, content string) Rect {
	l, ok := o.layout(width, height, contentLines(content))
	if !ok {
		return Rect{}
	}
	return l.content
}

// Render draws the overlay on top of base content. Empty content leaves
// base untouched.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if content == "" {
		return base
	}

	lines := contentLines(content)
	l, ok := o.layout(width, height, lines)
	if !ok {
		return base
	}

	out := fitLines(base, width, height)
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	for row := l.box.Y; row < l.box.Y+l.box.H; row++ {
		boxLine := bgSeq + strings.Repeat(" ", l.box.W) + ansi.ResetStyle
		if i := row - l.content.Y; i >= 0 && i < l.content.H {
			boxLine = o.boxRow(l, lines[i], bgSeq)
		}
		left := ansi.Cut(out[row], 0, l.box.X)
		right := ansi.Cut(out[row], l.box.X+l.box.W, width)
		out[row] = left + boxLine + right
	}

	return strings.Join(out, "\n")
}

// boxRow renders one backdrop row with a dialog line centered in it.
func (o OverlayModel) boxRow(l overlayLayout, line, bgSeq string) string {
	line = ansi.Cut(line, 0, l.content.W)
	line += strings.Repeat(" ", l.content.W-lipgloss.Width(line))
	line = keepBackground(line, bgSeq)

	leftPad := l.content.X - l.box.X
	rightPad := max(l.box.W-leftPad-l.content.W, 0)
	return bgSeq + strings.Repeat(" ", leftPad) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
}

func (o OverlayModel) boxSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	boxW := min(max(width/2, overlayMinWidth), overlayMaxWidth, width)
	boxH := min(max(height/3, overlayMinHeight), overlayMaxHeight, height)
	return boxW, boxH
}

// contentLines splits content into lines without trailing blank lines.
func contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func blockSize(lines []string) (int, int) {
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w, len(lines)
}

// keepBackground re-applies the backdrop after every reset inside line.
func keepBackground(line, bgSeq string) string {
	if bgSeq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}

// fitLines cuts or pads base to exactly height lines of width cells.
func fitLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
