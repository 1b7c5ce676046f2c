// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Auto selects a dark or light theme from the terminal background.
const Auto = "auto"

// DefaultName is used for empty and unknown theme names.
const DefaultName = "mocha"

var themeNames = []string{"mocha", "macchiato", "frappe", "latte", "light"}

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Panels, progress track
	BgSelection string `toml:"bg_selection"` // Active tab, backdrop
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Captions, hints
	Accent      string `toml:"accent"`       // Title, active tab, borders
	Positive    string `toml:"positive"`     // Engagement score, progress fill
	Info        string `toml:"info"`         // Trend bars, links
	Warning     string `toml:"warning"`      // Wellness insight, errors

	Modal ModalTheme `toml:"modal"`
}

// ModalTheme overrides dialog colors. Empty fields fall back to the base
// theme.
type ModalTheme struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
}

// Load loads a theme by name from embedded files.
// Unknown names fall back to mocha.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == Auto {
		name = Resolve(name, termenv.HasDarkBackground())
	}
	if !slices.Contains(themeNames, name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.Modal = t.resolvedModal()

	return &t, nil
}

// Resolve maps "auto" to a concrete theme for the given background and
// empty names to the default. Other names are returned lowercased.
func Resolve(name string, darkBackground bool) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "":
		return DefaultName
	case name != Auto:
		return name
	case darkBackground:
		return "mocha"
	default:
		return "latte"
	}
}

// resolvedModal fills empty dialog colors from the base theme.
func (t *Theme) resolvedModal() ModalTheme {
	return ModalTheme{
		Bg:        coalesce(t.Modal.Bg, t.BgHighlight, t.Bg),
		Border:    coalesce(t.Modal.Border, t.Accent),
		Text:      coalesce(t.Modal.Text, t.Fg),
		Muted:     coalesce(t.Modal.Muted, t.FgMuted),
		Highlight: coalesce(t.Modal.Highlight, t.BgSelection, t.Accent),
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return slices.Clone(themeNames)
}

// IsAvailable reports whether a theme name is available.
// "auto" is accepted as well.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	return name == Auto || slices.Contains(themeNames, name)
}
