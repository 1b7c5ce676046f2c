package view

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderTabBar_Spans(t *testing.T) {
	styles := TabBarStyles{
		Tab:       lipgloss.NewStyle().Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true),
		Gap:       lipgloss.NewStyle(),
	}
	model := TabBarModel{
		Labels: []string{"Dashboard", "Learning", "Wellness", "Compensation"},
		Active: 1,
	}

	bar, spans := RenderTabBar(model, styles)
	if len(spans) != 4 {
		t.Fatalf("spans = %d, want 4", len(spans))
	}

	want := []Span{
		{Start: 0, End: 13},
		{Start: 14, End: 26},
		{Start: 27, End: 39},
		{Start: 40, End: 56},
	}
	for i, s := range spans {
		if s != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, s, want[i])
		}
	}

	if got := lipgloss.Width(bar); got != 56 {
		t.Errorf("bar width = %d, want 56", got)
	}

	plain := ansi.Strip(bar)
	for i, s := range spans {
		label := ansi.Cut(plain, s.Start, s.End)
		if label != "  "+model.Labels[i]+"  " {
			t.Errorf("label at span %d = %q", i, label)
		}
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 3, End: 6}
	if s.Contains(2) || !s.Contains(3) || !s.Contains(5) || s.Contains(6) {
		t.Fatalf("unexpected Contains results for %+v", s)
	}
}
