// Package util provides shared string helpers for terminal output.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// TruncateANSI truncates s to maxWidth visual columns, adding "..." if
// truncated. ANSI escape codes and wide characters are measured correctly.
// A maxWidth of 0 or less means no limit.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return Ellipsis[:maxWidth]
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}
