package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal body styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	ValueStyle        lipgloss.Style
	TotalStyle        lipgloss.Style
	ErrorStyle        lipgloss.Style
	HintStyle         lipgloss.Style
}

// PayslipStyles returns the modal styles needed for the payslip.
func (s ModalStyleSet) PayslipStyles() PayslipStyles {
	return PayslipStyles{
		BodyStyle:  s.BodyStyle,
		MetaStyle:  s.MetaStyle,
		LabelStyle: s.LabelStyle,
		ValueStyle: s.ValueStyle,
		TotalStyle: s.TotalStyle,
	}
}

// LeaveFormStyles returns the modal styles needed for the leave form.
func (s ModalStyleSet) LeaveFormStyles() LeaveFormStyles {
	return LeaveFormStyles{
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		ErrorStyle:        s.ErrorStyle,
		HintStyle:         s.HintStyle,
	}
}

// LearningModulesStyles returns the modal styles needed for the module list.
func (s ModalStyleSet) LearningModulesStyles() LearningModulesStyles {
	return LearningModulesStyles{
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		HintStyle:         s.HintStyle,
	}
}
