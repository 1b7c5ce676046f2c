package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/portal"
)

var testLeaveID = uuid.MustParse("3f2a9c1e-7b4d-4e2a-9c1e-7b4d4e2a9c1e")

var testNow = time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC)

type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) write(s string) error {
	f.text = s
	return nil
}

// newTestModel returns a sized model with deterministic leave refs and clock.
func newTestModel(t *testing.T, opts ...ModelOption) Model {
	t.Helper()

	cfg := config.Default()
	cfg.Employee.Name = "Asha Rao"
	cfg.Export.PayslipDir = t.TempDir()

	desk := portal.NewLeaveDesk(
		portal.WithIDSource(func() uuid.UUID { return testLeaveID }),
		portal.WithClock(func() time.Time { return testNow }),
	)
	base := []ModelOption{
		WithLeaveDesk(desk),
		WithClipboard((&fakeClipboard{}).write),
		WithClock(func() time.Time { return testNow }),
	}

	m := New(cfg, append(base, opts...)...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

// keyMsg builds a key message from its string form.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key in order and returns the final model and command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

// typeText types s one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
