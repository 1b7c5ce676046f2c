package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/view"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	msg := strings.TrimSpace(m.statusMsg)
	if msg == "" {
		return " "
	}
	return msg
}

// statusStyle picks the status line style for the current notice level.
func (m Model) statusStyle() lipgloss.Style {
	switch m.statusLevel {
	case portal.NoticeSuccess:
		return m.styles.StatusSuccessStyle
	case portal.NoticeError:
		return m.styles.StatusErrorStyle
	case portal.NoticeInfo:
	}
	return m.styles.StatusStyle
}

// renderFooter renders the status and help lines.
func (m Model) renderFooter() string {
	return view.RenderFooter(view.FooterModel{
		InnerW:      m.layout.InnerW,
		StatusText:  m.statusMsgOrDefault(),
		HelpText:    m.help.View(helpKeys{keys: m.keys, state: m.state}),
		StatusStyle: m.statusStyle(),
		HelpStyle:   m.styles.HelpBarStyle,
	})
}
