package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"short string unchanged", "Golf", 10, "Golf"},
		{"exact width unchanged", "Golf", 4, "Golf"},
		{"long string truncated", "Golf Variant", 8, "Golf ..."},
		{"zero means no limit", "Golf Variant", 0, "Golf Variant"},
		{"negative means no limit", "Golf Variant", -1, "Golf Variant"},
		{"tiny width keeps part of ellipsis", "Golf Variant", 2, ".."},
		{"width of ellipsis", "Golf Variant", 3, "..."},
		{"wide characters", "日本語テキスト", 7, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateANSI(tt.input, tt.maxWidth); got != tt.expected {
				t.Errorf("TruncateANSI(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI_StyledText(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Polo GTI Edition")

	got := TruncateANSI(styled, 8)
	if w := lipgloss.Width(got); w > 8 {
		t.Errorf("visual width = %d, want <= 8 (got %q)", w, got)
	}
}
