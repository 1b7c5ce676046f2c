package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/commands"
)

// keyMap defines the key bindings for every interaction mode.
type keyMap struct {
	// Tab selection.
	Dashboard    key.Binding
	Learning     key.Binding
	Wellness     key.Binding
	Compensation key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding

	// Dialog triggers.
	Activate key.Binding // The active panel's button.
	Payslip  key.Binding
	Leave    key.Binding
	Modules  key.Binding

	// Inside dialogs.
	Close     key.Binding
	Copy      key.Binding
	Export    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Confirm   key.Binding // Advances the leave form; submits on the last field.

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "tabs"),
		),
		Learning:     key.NewBinding(key.WithKeys("2")),
		Wellness:     key.NewBinding(key.WithKeys("3")),
		Compensation: key.NewBinding(key.WithKeys("4")),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab/h", "prev tab"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "open"),
		),
		Payslip: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "payslip"),
		),
		Leave: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "request leave"),
		),
		Modules: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "modules"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export pdf"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "submit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys adapts the key map to the current state for the help view.
type helpKeys struct {
	keys  keyMap
	state portal.State
}

// ShortHelp implements help.KeyMap.
func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state.Dialog {
	case portal.DialogPayslip:
		return []key.Binding{k.Copy, k.Export, k.Dashboard, k.Close}
	case portal.DialogLeave:
		return []key.Binding{k.NextField, k.Submit, k.Close}
	case portal.DialogLearning:
		return []key.Binding{k.Dashboard, k.Close}
	case portal.DialogNone:
	}
	return []key.Binding{k.Dashboard, k.NextTab, k.Activate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (h helpKeys) FullHelp() [][]key.Binding {
	if h.state.DialogOpen() {
		return [][]key.Binding{h.ShortHelp()}
	}
	k := h.keys
	return [][]key.Binding{
		{k.Dashboard, k.NextTab, k.PrevTab},
		{k.Activate, k.Payslip, k.Leave, k.Modules},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state.Dialog {
	case portal.DialogLeave:
		return m.handleLeaveKeys(msg)
	case portal.DialogPayslip:
		return m.handlePayslipKeys(msg)
	case portal.DialogLearning:
		return m.handleLearningKeys(msg)
	case portal.DialogNone:
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys when no dialog is open.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if tab, ok := m.tabForKey(msg); ok {
		m.selectTab(tab, "key "+msg.String())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(m.state.Tab.Next(), "next tab")
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(m.state.Tab.Prev(), "prev tab")
	case key.Matches(msg, m.keys.Activate):
		if kind, ok := panelDialog(m.state.Tab); ok {
			return m.openDialog(kind, "panel button")
		}
	case key.Matches(msg, m.keys.Payslip):
		return m.openDialog(portal.DialogPayslip, "hotkey")
	case key.Matches(msg, m.keys.Leave):
		return m.openDialog(portal.DialogLeave, "hotkey")
	case key.Matches(msg, m.keys.Modules):
		return m.openDialog(portal.DialogLearning, "hotkey")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handlePayslipKeys handles keys in the payslip dialog.
func (m Model) handlePayslipKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if tab, ok := m.tabForKey(msg); ok {
		m.selectTab(tab, "key "+msg.String())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeDialog("esc")
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyPayslip()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportPayslip()
	}
	return m, nil
}

func (m Model) copyPayslip() tea.Cmd {
	return commands.CopyPayslip(m.clipboard, m.payslipDocument())
}

func (m *Model) exportPayslip() tea.Cmd {
	return tea.Batch(
		m.setStatus("Exporting payslip...", portal.NoticeInfo),
		commands.ExportPayslip(m.config.Export.PayslipDir, m.payslipDocument()),
	)
}

// handleLearningKeys handles keys in the learning modules dialog.
func (m Model) handleLearningKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if tab, ok := m.tabForKey(msg); ok {
		m.selectTab(tab, "key "+msg.String())
		return m, nil
	}
	if key.Matches(msg, m.keys.Close) {
		m.closeDialog("esc")
	}
	return m, nil
}

// handleLeaveKeys handles keys in the leave request form. Everything that is
// not a form control goes to the focused input, so digits and letters type.
func (m Model) handleLeaveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeDialog("esc")
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitLeave()
	case key.Matches(msg, m.keys.Confirm):
		if m.leaveFocus == leaveFieldDate {
			return m.submitLeave()
		}
		return m, m.focusLeaveField(m.leaveFocus.next())
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusLeaveField(m.leaveFocus.next())
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusLeaveField(m.leaveFocus.prev())
	}

	var cmd tea.Cmd
	switch m.leaveFocus {
	case leaveFieldReason:
		m.leaveReason, cmd = m.leaveReason.Update(msg)
	case leaveFieldDate:
		m.leaveDate, cmd = m.leaveDate.Update(msg)
	}
	return m, cmd
}

func (m Model) tabForKey(msg tea.KeyMsg) (portal.Tab, bool) {
	switch {
	case key.Matches(msg, m.keys.Dashboard):
		return portal.TabDashboard, true
	case key.Matches(msg, m.keys.Learning):
		return portal.TabLearning, true
	case key.Matches(msg, m.keys.Wellness):
		return portal.TabWellness, true
	case key.Matches(msg, m.keys.Compensation):
		return portal.TabCompensation, true
	}
	return 0, false
}

// panelDialog returns the dialog opened by a tab's panel button.
func panelDialog(t portal.Tab) (portal.DialogKind, bool) {
	switch t {
	case portal.TabLearning:
		return portal.DialogLearning, true
	case portal.TabWellness:
		return portal.DialogLeave, true
	case portal.TabCompensation:
		return portal.DialogPayslip, true
	case portal.TabDashboard:
	}
	return portal.DialogNone, false
}

// focusLeaveField moves focus between the leave inputs.
func (m *Model) focusLeaveField(f leaveField) tea.Cmd {
	m.leaveFocus = f
	switch f {
	case leaveFieldReason:
		m.leaveDate.Blur()
		return m.leaveReason.Focus()
	case leaveFieldDate:
		m.leaveReason.Blur()
		return m.leaveDate.Focus()
	}
	return nil
}

// submitLeave hands the form to the leave desk. A rejected request keeps
// the dialog open and shows the reason inline.
func (m Model) submitLeave() (tea.Model, tea.Cmd) {
	req := portal.LeaveRequest{
		Reason: m.leaveReason.Value(),
		Date:   m.leaveDate.Value(),
	}
	next, notice, err := m.desk.Submit(m.state, req)
	if err != nil {
		LogError("submit leave", err)
		m.leaveError = notice.Text
		return m, nil
	}
	m.transition(next, "submit leave")
	m.resetLeaveForm()
	return m, m.setStatus(notice.Text, notice.Level)
}

func (m *Model) resetLeaveForm() {
	m.leaveReason.Reset()
	m.leaveDate.Reset()
	m.leaveReason.Blur()
	m.leaveDate.Blur()
	m.leaveFocus = leaveFieldReason
	m.leaveError = ""
}

// selectTab switches the active tab; an open dialog stays open.
func (m *Model) selectTab(t portal.Tab, reason string) {
	m.transition(m.state.SelectTab(t), reason)
}

// openDialog shows a dialog, replacing any open one.
func (m Model) openDialog(kind portal.DialogKind, reason string) (tea.Model, tea.Cmd) {
	m.transition(m.state.OpenDialog(kind), reason)
	if kind == portal.DialogLeave {
		m.resetLeaveForm()
		return m, tea.Batch(m.focusLeaveField(leaveFieldReason), textinput.Blink)
	}
	return m, nil
}

func (m *Model) closeDialog(reason string) {
	if m.state.Dialog == portal.DialogLeave {
		m.resetLeaveForm()
	}
	m.transition(m.state.CloseDialog(), reason)
}

func (m *Model) transition(next portal.State, reason string) {
	LogTransition(m.state, next, reason)
	m.state = next
}
