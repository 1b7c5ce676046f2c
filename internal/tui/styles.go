// Package tui provides the terminal user interface for hrportal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/hrportal/internal/tui/theme"
)

// modalWidth is the inner width of dialog panels.
const modalWidth = 56

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorPositive    lipgloss.Color
	colorInfo        lipgloss.Color
	colorWarning     lipgloss.Color
	colorPanelBg     lipgloss.Color
	colorTrackBg     lipgloss.Color

	colorTextOnAccent lipgloss.Color

	// Title row
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	// Tab bar
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	// Content panel
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
	BodyStyle       lipgloss.Style
	CaptionStyle    lipgloss.Style
	ScoreStyle      lipgloss.Style
	InsightStyle    lipgloss.Style
	LabelStyle      lipgloss.Style
	ButtonStyle     lipgloss.Style
	TrendBarStyle   lipgloss.Style
	TrendTrackStyle lipgloss.Style

	// Status message
	StatusStyle        lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style

	// Help text
	HelpBarStyle  lipgloss.Style
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	HelpSepStyle  lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalValueStyle        lipgloss.Style
	ModalTotalStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorPositive = palette.Positive
	s.colorInfo = palette.Info
	s.colorWarning = palette.Warning
	s.colorPanelBg = palette.PanelBg
	s.colorTrackBg = palette.TrackBg
	s.colorTextOnAccent = palette.TextOnAccent

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.SubtitleStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Tabs: inactive labels sit on the panel color, the active one is inverted
	s.TabStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 2)

	s.TabActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	s.TabGapStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(s.colorPanelBg).
		Foreground(s.colorFg).
		Padding(1, 2)

	s.PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorPanelBg)

	s.BodyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorPanelBg)

	s.CaptionStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorPanelBg)

	s.ScoreStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorPositive).
		Background(s.colorPanelBg)

	s.InsightStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorPanelBg)

	s.LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorPanelBg)

	s.ButtonStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	s.TrendBarStyle = lipgloss.NewStyle().
		Foreground(s.colorInfo).
		Background(s.colorPanelBg)

	s.TrendTrackStyle = lipgloss.NewStyle().
		Foreground(s.colorTrackBg).
		Background(s.colorPanelBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(s.colorPositive).
		Background(s.colorBg).
		Bold(true)

	s.StatusErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpBarStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.HelpDescStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HelpSepStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	modalBorder := modal.Border
	modalText := modal.Text
	modalMuted := modal.Muted
	modalHighlight := modal.Highlight
	modalPanel := modal.Panel
	modalReverseText := modal.ReverseText
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		Width(14).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalTotalStyle = lipgloss.NewStyle().
		Foreground(s.colorPositive).
		Bold(true).
		Background(modalBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(0, 1).
		Width(modalWidth - 6)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalHighlight).
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 1).
		Width(modalWidth - 6)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Padding(0, 2).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modalBg).
		Bold(true)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(appPadTop).
		PaddingLeft(appPadLeft).
		PaddingRight(appPadLeft)

	return s
}
