package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// centerOverlay draws popup over the middle of base. Both are treated as
// line grids; base is padded to width x height first.
func centerOverlay(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return popup
	}
	baseLines := fitLines(base, width, height)
	popLines := strings.Split(popup, "\n")
	popWidth := maxLineWidth(popLines)

	x := max(0, (width-popWidth)/2)
	y := max(0, (height-len(popLines))/2)
	for i, line := range popLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		target := baseLines[row]
		left := padRight(ansi.Truncate(target, x, ""), x)
		mid := padRight(line, popWidth)
		right := ansi.TruncateLeft(target, x+popWidth, "")
		baseLines[row] = ansi.Truncate(left+mid+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width is at least width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// renderBar renders a single full-width line, truncating overflow.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	if width > 0 {
		line = padRight(ansi.Truncate(line, width, ""), width)
	}
	return style.Render(line)
}
