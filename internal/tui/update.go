package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(msg.Width, msg.Height)
		m.help.Width = m.layout.InnerW
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), portal.NoticeError)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, msg.Level)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.PayslipExportedMsg:
		return m, m.setStatus("Payslip saved to "+msg.Path, portal.NoticeSuccess)

	case commands.PayslipCopiedMsg:
		return m, m.setStatus("Payslip copied to clipboard", portal.NoticeSuccess)

	case commands.ConfigSavedMsg:
		m.initState.ConfigMissing = false
		return m, m.setStatus("Wrote default config to "+msg.Path, portal.NoticeInfo)
	}

	// Cursor blink and other input messages go to the focused leave input.
	if m.state.Dialog == portal.DialogLeave {
		var cmd tea.Cmd
		switch m.leaveFocus {
		case leaveFieldReason:
			m.leaveReason, cmd = m.leaveReason.Update(msg)
		case leaveFieldDate:
			m.leaveDate, cmd = m.leaveDate.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}
