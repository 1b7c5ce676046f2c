package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Positive    lipgloss.Color
	Info        lipgloss.Color
	Warning     lipgloss.Color

	// Panel cards and the empty part of progress bars.
	PanelBg lipgloss.Color
	TrackBg lipgloss.Color

	TextOnAccent lipgloss.Color

	Modal ModalColors
}

// ModalColors holds dialog colors derived from a Theme.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Highlight   lipgloss.Color
	Panel       lipgloss.Color // input boxes
	ReverseText lipgloss.Color // text on Highlight
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	modal := t.resolvedModal()

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Positive:    lipgloss.Color(t.Positive),
		Info:        lipgloss.Color(t.Info),
		Warning:     lipgloss.Color(t.Warning),

		PanelBg: lipgloss.Color(coalesce(t.BgHighlight, t.Bg)),
		TrackBg: lipgloss.Color(trackColor(t.BgSelection, t.Bg, t.IsLight())),

		TextOnAccent: lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modal.Bg),
			Border:      lipgloss.Color(modal.Border),
			Text:        lipgloss.Color(modal.Text),
			Muted:       lipgloss.Color(modal.Muted),
			Highlight:   lipgloss.Color(modal.Highlight),
			Panel:       lipgloss.Color(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
			ReverseText: lipgloss.Color(chooseTextColor(modal.Highlight, modal.Bg, modal.Text)),
			Backdrop:    lipgloss.Color(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
		},
	}
}

// IsLight reports whether the theme has a light background.
func (t *Theme) IsLight() bool {
	return luminance(t.Bg) > 0.55
}

// trackColor picks the unfilled progress color: the selection color pushed
// further away from the background so it stays visible on both theme kinds.
func trackColor(selection, bg string, isLight bool) string {
	if selection == "" {
		return bg
	}
	if isLight {
		return blendColors(selection, "#000000", 0.10)
	}
	return blendColors(selection, bg, 0.25)
}

// chooseTextColor returns whichever candidate contrasts more with bg.
func chooseTextColor(bg string, candidates ...string) string {
	best, bestRatio := "", -1.0
	for _, c := range candidates {
		if r := contrastRatio(bg, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

// contrastRatio is the WCAG contrast ratio between two colors.
func contrastRatio(a, b string) float64 {
	l1, l2 := luminance(a), luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// luminance is the WCAG relative luminance; unparsable colors count as black.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a toward b by ratio in RGB space. Invalid input returns a.
func blendColors(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
