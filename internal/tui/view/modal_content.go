// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PayslipModel contains the fields needed to render the payslip body.
type PayslipModel struct {
	Employee string
	Rows     [][2]string // Label, value; the last row is the total
}

// PayslipStyles groups styles for the payslip body.
type PayslipStyles struct {
	BodyStyle  lipgloss.Style
	MetaStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	ValueStyle lipgloss.Style
	TotalStyle lipgloss.Style
}

// RenderPayslipBody renders the modal body for payslip details.
func RenderPayslipBody(model PayslipModel, styles PayslipStyles) string {
	var body strings.Builder

	if model.Employee != "" {
		body.WriteString(styles.MetaStyle.Render(" "+model.Employee) + "\n\n")
	}
	for i, row := range model.Rows {
		value := styles.ValueStyle.Render(row[1])
		if i == len(model.Rows)-1 {
			value = styles.TotalStyle.Render(row[1])
		}
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.LabelStyle.Render(row[0]+":") + value)
	}

	return body.String()
}

// LeaveFormModel contains the fields needed to render the leave form body.
type LeaveFormModel struct {
	ReasonValue string
	ReasonStyle lipgloss.Style
	DateValue   string
	DateStyle   lipgloss.Style
	Error       string
}

// LeaveFormStyles groups styles for the leave form body.
type LeaveFormStyles struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderLeaveFormBody renders the modal body for the leave request form.
func RenderLeaveFormBody(model LeaveFormModel, styles LeaveFormStyles) string {
	var body strings.Builder

	body.WriteString(styles.SectionTitleStyle.Render("REASON") + "\n")
	body.WriteString(model.ReasonStyle.Render(model.ReasonValue) + "\n\n")
	body.WriteString(styles.SectionTitleStyle.Render("DATE") + "\n")
	body.WriteString(model.DateStyle.Render(model.DateValue))
	if model.Error != "" {
		body.WriteString("\n\n" + styles.ErrorStyle.Render(" "+model.Error))
	}

	return body.String()
}

// LearningModulesModel contains the fields needed to render the module list.
type LearningModulesModel struct {
	Course  string
	Modules []string
}

// LearningModulesStyles groups styles for the module list body.
type LearningModulesStyles struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderLearningModulesBody renders the modal body listing learning modules.
func RenderLearningModulesBody(model LearningModulesModel, styles LearningModulesStyles) string {
	var body strings.Builder

	body.WriteString(styles.SectionTitleStyle.Render(model.Course) + "\n\n")
	if len(model.Modules) == 0 {
		body.WriteString(styles.HintStyle.Render(" No modules available."))
		return body.String()
	}
	for i, name := range model.Modules {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.BodyStyle.Render(fmt.Sprintf(" %d. %s", i+1, name)))
	}

	return body.String()
}
