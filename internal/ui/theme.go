// Package ui renders terminal feedback for the scaffolder: headless
// detection, stage progress, spinners and result cards.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colors, chosen to read on both dark and light terminals.
const (
	ColorPrimary   = "#F97316"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Colors holds the palette used by a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	// NoColor disables all styling, e.g. when NO_COLOR is set.
	NoColor bool
}

// Theme is the shared look of every UI component.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme creates a Theme with the default palette.
func NewTheme(cfg ThemeConfig) *Theme {
	return &Theme{
		NoColor: cfg.NoColor,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
	}
}

func (t *Theme) style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// Title styles headings.
func (t *Theme) Title() lipgloss.Style { return t.style(t.Colors.Primary).Bold(true) }

// Success styles completed steps.
func (t *Theme) Success() lipgloss.Style { return t.style(t.Colors.Success) }

// Warning styles warnings.
func (t *Theme) Warning() lipgloss.Style { return t.style(t.Colors.Warning) }

// Error styles failures.
func (t *Theme) Error() lipgloss.Style { return t.style(t.Colors.Error).Bold(true) }

// Muted styles secondary text.
func (t *Theme) Muted() lipgloss.Style { return t.style(t.Colors.Muted) }

// Card returns the bordered box used for summaries.
func (t *Theme) Card() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.Color(t.Colors.Border))
	}
	return s
}
