// Package view provides rendering helpers for the TUI.
package view

// OverlayRenderer renders a dialog on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// Screen contains the pre-rendered app and the dialog, if any.
type Screen struct {
	Width   int
	Height  int
	App     string
	Dialog  string // empty when no dialog is open
	Overlay OverlayRenderer
}

// Render composes the final view output.
func Render(s Screen) string {
	if s.Width == 0 || s.Height == 0 {
		return "Loading..."
	}
	if s.Dialog != "" && s.Overlay != nil {
		return s.Overlay.Render(s.App, s.Width, s.Height, s.Dialog)
	}
	return s.App
}
