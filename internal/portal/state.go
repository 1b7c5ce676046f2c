// Package portal defines the view-state machine of the employee portal.
//
// The whole mutable state is a State value: the active Tab and the open
// DialogKind. The two are independent. Transitions are pure and return a new
// State, so the machine can be driven and tested without a renderer.
package portal

import (
	"fmt"
	"strings"
)

// Tab selects the visible content panel.
type Tab int

const (
	TabDashboard Tab = iota
	TabLearning
	TabWellness
	TabCompensation
)

var tabOrder = []Tab{TabDashboard, TabLearning, TabWellness, TabCompensation}

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder)
	return out
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	return t >= TabDashboard && t <= TabCompensation
}

// String returns the identifier used in config, flags and logs.
func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "dashboard"
	case TabLearning:
		return "learning"
	case TabWellness:
		return "wellness"
	case TabCompensation:
		return "compensation"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Title returns the label shown on the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabLearning:
		return "Learning"
	case TabWellness:
		return "Wellness"
	case TabCompensation:
		return "Compensation"
	default:
		return ""
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	if !t.Valid() {
		return TabDashboard
	}
	return tabOrder[(int(t)+1)%len(tabOrder)]
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	if !t.Valid() {
		return TabDashboard
	}
	return tabOrder[(int(t)+len(tabOrder)-1)%len(tabOrder)]
}

// ParseTab converts an identifier such as "wellness" into a Tab.
func ParseTab(s string) (Tab, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range tabOrder {
		if t.String() == name {
			return t, nil
		}
	}
	return TabDashboard, fmt.Errorf("unknown tab %q", s)
}

// DialogKind selects which modal, if any, is displayed.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogPayslip
	DialogLeave
	DialogLearning
)

// Dialogs returns the dialogs that can be opened.
func Dialogs() []DialogKind {
	return []DialogKind{DialogPayslip, DialogLeave, DialogLearning}
}

// Valid reports whether k is a known dialog kind, including DialogNone.
func (k DialogKind) Valid() bool {
	return k >= DialogNone && k <= DialogLearning
}

func (k DialogKind) String() string {
	switch k {
	case DialogNone:
		return "none"
	case DialogPayslip:
		return "payslip"
	case DialogLeave:
		return "leave"
	case DialogLearning:
		return "learning"
	default:
		return fmt.Sprintf("dialog(%d)", int(k))
	}
}

// Title returns the dialog heading.
func (k DialogKind) Title() string {
	switch k {
	case DialogPayslip:
		return "Payslip Details"
	case DialogLeave:
		return "Leave Request"
	case DialogLearning:
		return "Learning Modules"
	default:
		return ""
	}
}

// ParseDialogKind converts an identifier such as "payslip" into a DialogKind.
func ParseDialogKind(s string) (DialogKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := DialogNone; k <= DialogLearning; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return DialogNone, fmt.Errorf("unknown dialog %q", s)
}

// State is the complete mutable state of the portal view.
// The zero value is the initial state.
type State struct {
	Tab    Tab
	Dialog DialogKind
}

// Initial returns the state of a fresh load: dashboard with no dialog.
func Initial() State {
	return State{Tab: TabDashboard, Dialog: DialogNone}
}

// SelectTab makes t the active tab. The open dialog is left as is.
// Unknown tabs leave the state unchanged.
func (s State) SelectTab(t Tab) State {
	if !t.Valid() {
		return s
	}
	s.Tab = t
	return s
}

// OpenDialog shows dialog k, replacing any dialog already open.
// Opening DialogNone is the same as CloseDialog.
func (s State) OpenDialog(k DialogKind) State {
	if !k.Valid() {
		return s
	}
	s.Dialog = k
	return s
}

// CloseDialog hides the open dialog. Closing with nothing open is a no-op.
func (s State) CloseDialog() State {
	s.Dialog = DialogNone
	return s
}

// DialogOpen reports whether a dialog is currently displayed.
func (s State) DialogOpen() bool {
	return s.Dialog != DialogNone
}

func (s State) String() string {
	return fmt.Sprintf("(%s, %s)", s.Tab, s.Dialog)
}
