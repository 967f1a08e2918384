package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bgPainter renders styled segments on a shared background. lipgloss resets
// the background between separately rendered segments, which leaves gaps in
// the panel; painting every word and space explicitly avoids that.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type bgPainter struct {
	bg    lipgloss.Color
	space string
}

func newBgPainter(color string) bgPainter {
	bg := lipgloss.Color(color)
	return bgPainter{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// paint renders text with style, keeping the background on every space.
func (p bgPainter) paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(p.bg)
	if !strings.Contains(text, " ") {
		return style.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, p.space)
}

// join concatenates painted parts with painted spaces.
func (p bgPainter) join(parts ...string) string {
	return strings.Join(parts, p.space)
}

// center pads each line to the widest one so a multi-line block keeps a
// solid background.
func (p bgPainter) center(lines []string) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	style := lipgloss.NewStyle().Background(p.bg).Width(width).Align(lipgloss.Center)
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

