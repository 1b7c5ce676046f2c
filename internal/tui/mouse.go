package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/view"
)

// handleMouseMsg handles left clicks. With a dialog open, its footer buttons
// act like their keys, other clicks inside the dialog are ignored, and a
// click anywhere else closes it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.state.DialogOpen() {
		if i, ok := m.dialogButtonAt(msg.X, msg.Y); ok {
			LogMouse(msg, "dialog button")
			return m.pressDialogButton(i)
		}
		if m.dialogBounds().Contains(msg.X, msg.Y) {
			LogMouse(msg, "dialog")
			return m, nil
		}
		LogMouse(msg, "backdrop")
		m.closeDialog("backdrop click")
		return m, nil
	}

	if tab, ok := m.tabAt(msg.X, msg.Y); ok {
		LogMouse(msg, "tab "+tab.String())
		m.selectTab(tab, "tab click")
		return m, nil
	}

	if m.panelButtonAt(msg.X, msg.Y) {
		LogMouse(msg, "panel button")
		if kind, ok := panelDialog(m.state.Tab); ok {
			return m.openDialog(kind, "panel click")
		}
	}

	LogMouse(msg, "none")
	return m, nil
}

// pressDialogButton runs the footer button i of the open dialog.
func (m Model) pressDialogButton(i int) (tea.Model, tea.Cmd) {
	switch m.state.Dialog {
	case portal.DialogPayslip:
		switch i {
		case view.PayslipCopyButton:
			return m, m.copyPayslip()
		case view.PayslipExportButton:
			return m, m.exportPayslip()
		case view.PayslipCloseButton:
			m.closeDialog("close click")
		}
	case portal.DialogLeave:
		switch i {
		case view.LeaveSubmitButton:
			return m.submitLeave()
		case view.LeaveCancelButton:
			m.closeDialog("close click")
		}
	case portal.DialogLearning:
		if i == view.LearningCloseButton {
			m.closeDialog("close click")
		}
	case portal.DialogNone:
	}
	return m, nil
}

// dialogBounds returns the screen region of the open dialog.
func (m Model) dialogBounds() Rect {
	return m.overlay.ContentBounds(m.width, m.height, m.renderModal())
}

// dialogButtonAt returns the index of the footer button of the open dialog
// that covers the screen cell (x, y).
func (m Model) dialogButtonAt(x, y int) (int, bool) {
	dialog, footer := m.renderDialog()
	bounds := m.overlay.ContentBounds(m.width, m.height, dialog)
	if !bounds.Contains(x, y) {
		return 0, false
	}

	fx, fy := view.ModalFooterOrigin(dialog, m.modalStyles())
	if y != bounds.Y+fy {
		return 0, false
	}
	for i, span := range footer.Spans {
		if span.Contains(x - bounds.X - fx) {
			return i, true
		}
	}
	return 0, false
}

// tabAt returns the tab whose label covers the screen cell (x, y).
func (m Model) tabAt(x, y int) (portal.Tab, bool) {
	if y != appPadTop+tabBarOffset {
		return 0, false
	}
	_, spans := m.renderTabBar()
	for i, span := range spans {
		if span.Contains(x - appPadLeft) {
			return portal.Tab(i), true
		}
	}
	return 0, false
}

// panelButtonAt reports whether the active panel's button covers the
// screen cell (x, y).
func (m Model) panelButtonAt(x, y int) bool {
	label := panelButton(m.state.Tab)
	if label == "" || m.layout.InnerW <= 0 {
		return false
	}
	row, span := view.PanelButtonSpan(m.renderPanel(m.layout.PanelW), label, m.panelStyles())
	return y == appPadTop+panelOffset+row && span.Contains(x-appPadLeft)
}
