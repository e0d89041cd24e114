package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// pad truncates then right-pads s to exactly width runes.
func pad(s string, width int) string {
	s = truncate(s, width)
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// joinCells renders one table row from fixed-width cells.
func joinCells(cells []string) string {
	return strings.Join(cells, "  ")
}
