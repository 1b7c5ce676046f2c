package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		themeName string
		wantName  string
	}{
		{"mocha", "mocha"},
		{"macchiato", "macchiato"},
		{"frappe", "frappe"},
		{"latte", "latte"},
		{"light", "light"},
		{"Latte", "latte"},
		{"", "mocha"},
		{"nonexistent", "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.themeName, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	theme, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) unexpected error: %v", err)
	}

	// Verify all required colors are present and valid hex format
	colors := map[string]string{
		"Bg":              theme.Bg,
		"BgHighlight":     theme.BgHighlight,
		"BgSelection":     theme.BgSelection,
		"Fg":              theme.Fg,
		"FgMuted":         theme.FgMuted,
		"Accent":          theme.Accent,
		"Positive":        theme.Positive,
		"Info":            theme.Info,
		"Warning":         theme.Warning,
		"Modal.Bg":        theme.Modal.Bg,
		"Modal.Border":    theme.Modal.Border,
		"Modal.Text":      theme.Modal.Text,
		"Modal.Muted":     theme.Modal.Muted,
		"Modal.Highlight": theme.Modal.Highlight,
	}

	for name, hex := range colors {
		if len(hex) != 7 {
			t.Errorf("theme.%s = %q, want 7-char hex string", name, hex)
			continue
		}
		if hex[0] != '#' {
			t.Errorf("theme.%s = %q, want hex string starting with #", name, hex)
		}
	}
}

func TestAvailable(t *testing.T) {
	available := Available()

	expected := []string{"mocha", "macchiato", "frappe", "latte", "light"}
	if len(available) != len(expected) {
		t.Errorf("Available() returned %d themes, want %d", len(available), len(expected))
	}

	for i, want := range expected {
		if i >= len(available) {
			break
		}
		if available[i] != want {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "auto", theme: "auto", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		dark bool
		want string
	}{
		{name: "auto", dark: true, want: "mocha"},
		{name: "auto", dark: false, want: "latte"},
		{name: "AUTO", dark: false, want: "latte"},
		{name: "Frappe", dark: false, want: "frappe"},
		{name: "", dark: false, want: "mocha"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.name, tt.dark); got != tt.want {
			t.Errorf("Resolve(%q, %t) = %q, want %q", tt.name, tt.dark, got, tt.want)
		}
	}
}

func TestLoad_Auto(t *testing.T) {
	theme, err := Load("auto")
	if err != nil {
		t.Fatalf("Load(auto) unexpected error: %v", err)
	}
	if theme.Name != "mocha" && theme.Name != "latte" {
		t.Errorf("Load(auto).Name = %q, want mocha or latte", theme.Name)
	}
}

func TestIsLight(t *testing.T) {
	for name, want := range map[string]bool{"mocha": false, "latte": true, "light": true} {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if got := theme.IsLight(); got != want {
			t.Errorf("%s IsLight() = %t, want %t", name, got, want)
		}
	}
}
