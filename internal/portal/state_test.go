package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialIsZeroValue(t *testing.T) {
	assert.Equal(t, State{}, Initial())
	assert.Equal(t, TabDashboard, Initial().Tab)
	assert.Equal(t, DialogNone, Initial().Dialog)
	assert.False(t, Initial().DialogOpen())
}

func TestSelectTab_LastWriteWins(t *testing.T) {
	tests := []struct {
		name string
		tabs []Tab
		want Tab
	}{
		{name: "no calls", tabs: nil, want: TabDashboard},
		{name: "single", tabs: []Tab{TabLearning}, want: TabLearning},
		{name: "several", tabs: []Tab{TabWellness, TabCompensation, TabLearning}, want: TabLearning},
		{name: "same tab twice", tabs: []Tab{TabWellness, TabWellness}, want: TabWellness},
		{name: "back to dashboard", tabs: []Tab{TabCompensation, TabDashboard}, want: TabDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Initial()
			for _, tab := range tt.tabs {
				s = s.SelectTab(tab)
			}
			assert.Equal(t, tt.want, s.Tab)
		})
	}
}

func TestSelectTab_IgnoresUnknownTab(t *testing.T) {
	s := Initial().SelectTab(TabWellness)
	assert.Equal(t, s, s.SelectTab(Tab(42)))
	assert.Equal(t, s, s.SelectTab(Tab(-1)))
}

func TestDialog_LastWriteWins(t *testing.T) {
	type op struct {
		close bool
		kind  DialogKind
	}
	tests := []struct {
		name string
		ops  []op
		want DialogKind
	}{
		{name: "no calls", want: DialogNone},
		{name: "open", ops: []op{{kind: DialogPayslip}}, want: DialogPayslip},
		{name: "open then close", ops: []op{{kind: DialogLeave}, {close: true}}, want: DialogNone},
		{name: "close then open", ops: []op{{close: true}, {kind: DialogLearning}}, want: DialogLearning},
		{name: "replace", ops: []op{{kind: DialogLearning}, {kind: DialogLeave}}, want: DialogLeave},
		{name: "open none closes", ops: []op{{kind: DialogPayslip}, {kind: DialogNone}}, want: DialogNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Initial()
			for _, o := range tt.ops {
				if o.close {
					s = s.CloseDialog()
				} else {
					s = s.OpenDialog(o.kind)
				}
			}
			assert.Equal(t, tt.want, s.Dialog)
		})
	}
}

func TestStateIndependence(t *testing.T) {
	for _, tab := range Tabs() {
		for _, kind := range append(Dialogs(), DialogNone) {
			s := State{Tab: tab, Dialog: kind}

			for _, other := range Tabs() {
				assert.Equal(t, kind, s.SelectTab(other).Dialog, "SelectTab(%s) from %s", other, s)
			}
			for _, other := range Dialogs() {
				assert.Equal(t, tab, s.OpenDialog(other).Tab, "OpenDialog(%s) from %s", other, s)
			}
			assert.Equal(t, tab, s.CloseDialog().Tab, "CloseDialog from %s", s)
		}
	}
}

func TestCloseDialog_Idempotent(t *testing.T) {
	for _, tab := range Tabs() {
		s := State{Tab: tab}
		assert.Equal(t, s, s.CloseDialog())
		assert.Equal(t, s, s.CloseDialog().CloseDialog())
	}
}

func TestScenarios(t *testing.T) {
	t.Run("select learning from initial", func(t *testing.T) {
		got := Initial().SelectTab(TabLearning)
		assert.Equal(t, State{Tab: TabLearning, Dialog: DialogNone}, got)
	})

	t.Run("dialog persists across tab change", func(t *testing.T) {
		got := Initial().OpenDialog(DialogPayslip).SelectTab(TabWellness)
		assert.Equal(t, State{Tab: TabWellness, Dialog: DialogPayslip}, got)
	})

	t.Run("second open replaces first", func(t *testing.T) {
		s := State{Tab: TabLearning, Dialog: DialogLearning}
		assert.Equal(t, State{Tab: TabLearning, Dialog: DialogLeave}, s.OpenDialog(DialogLeave))
	})
}

func TestTabCycle(t *testing.T) {
	assert.Equal(t, TabLearning, TabDashboard.Next())
	assert.Equal(t, TabDashboard, TabCompensation.Next())
	assert.Equal(t, TabCompensation, TabDashboard.Prev())
	assert.Equal(t, TabWellness, TabCompensation.Prev())

	tab := TabWellness
	for range Tabs() {
		tab = tab.Next()
	}
	assert.Equal(t, TabWellness, tab)
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs() {
		got, err := ParseTab(tab.String())
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}

	got, err := ParseTab("  Compensation ")
	require.NoError(t, err)
	assert.Equal(t, TabCompensation, got)

	_, err = ParseTab("payroll")
	assert.Error(t, err)
}

func TestParseDialogKind(t *testing.T) {
	for _, kind := range append(Dialogs(), DialogNone) {
		got, err := ParseDialogKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := ParseDialogKind("settings")
	assert.Error(t, err)
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Payslip Details", DialogPayslip.Title())
	assert.Equal(t, "Leave Request", DialogLeave.Title())
	assert.Equal(t, "Learning Modules", DialogLearning.Title())
	assert.Empty(t, DialogNone.Title())
	for _, tab := range Tabs() {
		assert.NotEmpty(t, tab.Title())
	}
}
