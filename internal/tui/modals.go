package tui

import (
	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/view"
)

// renderModal renders the current dialog.
func (m Model) renderModal() string {
	dialog, _ := m.renderDialog()
	return dialog
}

// renderDialog renders the current dialog along with its footer buttons.
func (m Model) renderDialog() (string, view.ModalFooter) {
	switch m.state.Dialog {
	case portal.DialogPayslip:
		return m.renderPayslipModal()
	case portal.DialogLeave:
		return m.renderLeaveModal()
	case portal.DialogLearning:
		return m.renderLearningModal()
	case portal.DialogNone:
	}
	return "", view.ModalFooter{}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		Frame:        m.styles.ModalStyle,
		Header:       m.styles.ModalHeaderStyle,
		Title:        m.styles.ModalTitleStyle,
		Footer:       m.styles.ModalFooterStyle,
		Body:         m.styles.ModalBodyStyle,
		Button:       m.styles.ModalButtonStyle,
		ButtonActive: m.styles.ModalButtonActiveStyle,
	}
}

// renderPayslipModal renders the payslip details dialog.
func (m Model) renderPayslipModal() (string, view.ModalFooter) {
	vm := m.payslipModalViewModel()
	body := view.RenderPayslipBody(vm.Model, vm.Styles)
	footer := view.PayslipFooter(m.modalStyles())
	return view.RenderModalFrame(portal.DialogPayslip.Title(), body, footer.View, m.modalStyles()), footer
}

// renderLeaveModal renders the leave request form.
func (m Model) renderLeaveModal() (string, view.ModalFooter) {
	vm := m.leaveModalViewModel()
	body := view.RenderLeaveFormBody(vm.Model, vm.Styles)
	footer := view.LeaveFormFooter(m.modalStyles())
	return view.RenderModalFrame(portal.DialogLeave.Title(), body, footer.View, m.modalStyles()), footer
}

// renderLearningModal renders the learning modules list.
func (m Model) renderLearningModal() (string, view.ModalFooter) {
	vm := m.learningModalViewModel()
	body := view.RenderLearningModulesBody(vm.Model, vm.Styles)
	footer := view.LearningModulesFooter(m.modalStyles())
	return view.RenderModalFrame(portal.DialogLearning.Title(), body, footer.View, m.modalStyles()), footer
}
