package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/hrportal/internal/tui/view"
)

func (m Model) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         m.styles.ModalBodyStyle,
		MetaStyle:         m.styles.ModalMetaStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		LabelStyle:        m.styles.ModalLabelStyle,
		ValueStyle:        m.styles.ModalValueStyle,
		TotalStyle:        m.styles.ModalTotalStyle,
		ErrorStyle:        m.styles.ModalErrorStyle,
		HintStyle:         m.styles.ModalHintStyle,
	}
}

type payslipModalViewModel struct {
	Model  view.PayslipModel
	Styles view.PayslipStyles
}

func (m Model) payslipModalViewModel() payslipModalViewModel {
	doc := m.payslipDocument()
	return payslipModalViewModel{
		Model: view.PayslipModel{
			Employee: doc.Employee,
			Rows:     doc.Lines(),
		},
		Styles: m.modalStyleSet().PayslipStyles(),
	}
}

type leaveModalViewModel struct {
	Model  view.LeaveFormModel
	Styles view.LeaveFormStyles
}

func (m Model) leaveModalViewModel() leaveModalViewModel {
	reasonValue, reasonStyle := m.leaveInputView(m.leaveReason, m.leaveFocus == leaveFieldReason)
	dateValue, dateStyle := m.leaveInputView(m.leaveDate, m.leaveFocus == leaveFieldDate)

	return leaveModalViewModel{
		Model: view.LeaveFormModel{
			ReasonValue: reasonValue,
			ReasonStyle: reasonStyle,
			DateValue:   dateValue,
			DateStyle:   dateStyle,
			Error:       m.leaveError,
		},
		Styles: m.modalStyleSet().LeaveFormStyles(),
	}
}

// leaveInputView renders an input with the focused or idle box style.
func (m Model) leaveInputView(input textinput.Model, focused bool) (string, lipgloss.Style) {
	textStyle := m.styles.ModalInputTextStyle
	cursorStyle := textStyle
	boxStyle := m.styles.ModalInputStyle
	if focused {
		focusedBg := m.styles.ModalInputFocusedStyle.GetBackground()
		textStyle = textStyle.Background(focusedBg)
		input.PlaceholderStyle = m.styles.ModalPlaceholderStyle.Background(focusedBg)
		cursorStyle = m.styles.ModalInputCursorStyle
		boxStyle = m.styles.ModalInputFocusedStyle
	}
	input.TextStyle = textStyle
	input.PromptStyle = textStyle
	input.Cursor.TextStyle = textStyle
	input.Cursor.Style = cursorStyle
	return input.View(), boxStyle
}

type learningModalViewModel struct {
	Model  view.LearningModulesModel
	Styles view.LearningModulesStyles
}

func (m Model) learningModalViewModel() learningModalViewModel {
	return learningModalViewModel{
		Model: view.LearningModulesModel{
			Course:  m.content.Learning.Course,
			Modules: m.content.Learning.Modules,
		},
		Styles: m.modalStyleSet().LearningModulesStyles(),
	}
}
