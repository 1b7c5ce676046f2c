package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/portal"
)

func TestViewBeforeWindowSize(t *testing.T) {
	m := New(config.Default())
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 3, Height: 10})
	if got := ansi.Strip(updated.(Model).renderAppContent()); got != "Terminal too small" {
		t.Fatalf("renderAppContent() = %q", got)
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	if len(lines) != m.height {
		t.Fatalf("lines = %d, want %d", len(lines), m.height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != m.width {
			t.Fatalf("line %d width = %d, want %d", i, w, m.width)
		}
	}

	if !strings.Contains(lines[appPadTop], "Employee HR Portal") {
		t.Errorf("title line = %q", lines[appPadTop])
	}
	if !strings.Contains(lines[appPadTop], "Asha Rao") {
		t.Errorf("title line missing employee: %q", lines[appPadTop])
	}

	tabRow := lines[appPadTop+tabBarOffset]
	for _, tab := range portal.Tabs() {
		if !strings.Contains(tabRow, tab.Title()) {
			t.Errorf("tab row %q missing %q", tabRow, tab.Title())
		}
	}
	if !strings.HasPrefix(tabRow, strings.Repeat(" ", appPadLeft)+"  Dashboard") {
		t.Errorf("tab row not aligned with app padding: %q", tabRow)
	}
}

func TestViewPanels(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"1", []string{"Employee Engagement", "Engagement Score: 82%", "Mon", "Fri", "78%"}},
		{"2", []string{"Learning & Development", "AI-Powered Healthcare Training", "70% completed", "View Modules"}},
		{"3", []string{"Wellness Insights", "night shifts", "Request Leave"}},
		{"4", []string{"Compensation & Benefits", "₹60,000 / month", "₹5,000", "₹2,000", "View Payslip"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := press(t, newTestModel(t), tt.key)
			out := ansi.Strip(m.View())
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestViewDialogs(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"p", []string{"Payslip Details", "March 2025", "₹60,000", "₹7,000", "₹65,000", "[e] Export PDF"}},
		{"r", []string{"Leave Request", "REASON", "DATE", "YYYY-MM-DD", "[Ctrl+S] Submit"}},
		{"m", []string{"Learning Modules", "1. Effective Patient Communication", "4. AI in Modern Healthcare"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := press(t, newTestModel(t), tt.key)
			out := ansi.Strip(m.View())
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestViewLeaveErrorInline(t *testing.T) {
	m, _ := press(t, newTestModel(t), "r", "ctrl+s")
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Enter a reason and a date") {
		t.Fatalf("expected inline validation error in view")
	}
}

func TestViewStatusLine(t *testing.T) {
	m, _ := press(t, newTestModel(t), "r")
	m = typeText(t, m, "Doctor visit")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "2025-04-02")
	m, _ = press(t, m, "ctrl+s")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Leave requested for 2025-04-02 (ref LR-3F2A9C1E)") {
		t.Fatalf("expected notice in status line")
	}
	if strings.Contains(out, "Leave Request") {
		t.Fatalf("expected leave dialog to be closed")
	}
}

func TestViewDialogUsesBackdrop(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	m, _ := press(t, newTestModel(t), "p")
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(m.styles.ModalBackdropColor))).String()

	if !strings.Contains(m.View(), bgSeq) {
		t.Fatalf("expected modal backdrop in view")
	}

	m, _ = press(t, m, "esc")
	if strings.Contains(m.View(), bgSeq) {
		t.Fatalf("expected no backdrop once closed")
	}
}

func TestScreenDialogFollowsState(t *testing.T) {
	m := newTestModel(t)
	if got := m.screen().Dialog; got != "" {
		t.Fatalf("dialog without open state = %q", got)
	}

	m, _ = press(t, m, "p")
	if got := ansi.Strip(m.screen().Dialog); !strings.Contains(got, "Payslip Details") {
		t.Fatalf("dialog = %q", got)
	}
	_ = m.View()
	if m.overlay != NewOverlayModel(m.styles.ModalBackdropColor) {
		t.Fatalf("View changed the overlay: %+v", m.overlay)
	}
}

func TestPanelTitleCoversEveryTab(t *testing.T) {
	seen := map[string]bool{}
	for _, tab := range portal.Tabs() {
		title := panelTitle(tab)
		if title == "" || seen[title] {
			t.Fatalf("panel title for %v = %q", tab, title)
		}
		seen[title] = true
	}
}
