package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestPadLinesWithBackground(t *testing.T) {
	got := PadLinesWithBackground("ab\nlonger line\nc\nd", 6, 3, lipgloss.Color("#000000"))
	lines := strings.Split(ansi.Strip(got), "\n")

	want := []string{"ab    ", "longer line", "c     "}
	if len(lines) != len(want) {
		t.Fatalf("lines = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPadLinesWithBackgroundNoSize(t *testing.T) {
	if got := PadLinesWithBackground("x", 0, 5, lipgloss.Color("")); got != "x" {
		t.Fatalf("got %q, want unchanged content", got)
	}
}
