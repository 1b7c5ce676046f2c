// Package view provides rendering helpers for the TUI.
package view

// ModalFooter is a rendered dialog button row and the span of each button.
type ModalFooter struct {
	View  string
	Spans []Span
}

// Footer buttons, in render order.
const (
	PayslipCopyButton = iota
	PayslipExportButton
	PayslipCloseButton
)

const (
	LeaveSubmitButton = iota
	LeaveCancelButton
)

const LearningCloseButton = 0

// PayslipFooter renders the footer for the payslip modal.
func PayslipFooter(styles ModalStyles) ModalFooter {
	return newModalFooter(RenderModalButtonsCompact(styles, "[y] Copy", "[e] Export PDF", "[Esc] Close"))
}

// LeaveFormFooter renders the footer for the leave request modal.
func LeaveFormFooter(styles ModalStyles) ModalFooter {
	return newModalFooter(RenderModalButtons(styles, "[Ctrl+S] Submit", "[Esc] Cancel"))
}

// LearningModulesFooter renders the footer for the learning modules modal.
func LearningModulesFooter(styles ModalStyles) ModalFooter {
	return newModalFooter(RenderModalButtons(styles, "[Esc] Close"))
}

func newModalFooter(row string, spans []Span) ModalFooter {
	return ModalFooter{View: row, Spans: spans}
}
