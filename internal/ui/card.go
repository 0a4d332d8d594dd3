package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled row of a card.
type Field struct {
	Label string
	Value string
}

// RenderCard draws title and fields inside the theme's card border.
// Labels are padded to a common width.
func RenderCard(theme *Theme, title string, fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Label))
	}

	var b strings.Builder
	b.WriteString(theme.Title().Render(title))
	for _, f := range fields {
		b.WriteString("\n")
		label := f.Label + strings.Repeat(" ", width-lipgloss.Width(f.Label))
		b.WriteString(theme.Muted().Render(label))
		b.WriteString("  ")
		b.WriteString(f.Value)
	}
	return theme.Card().Render(b.String())
}
