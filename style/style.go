// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.TerminalColor) lipgloss.Style {
	s := New()
	if fg != nil {
		s = s.Foreground(fg)
	}
	if bg != nil {
		s = s.Background(bg)
	}
	return s
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return Colored(c, nil).Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return Colored(nil, c).Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a padded banner used for section headings.
var Title = func(s string) string {
	return Colored(lipgloss.Color("230"), lipgloss.Color("62")).Padding(0, 1).Render(s)
}

// Swatch renders a block of the given width filled with a hex color, with
// the label drawn in a readable foreground.
func Swatch(hex, label string, width int, dark bool) string {
	fg := lipgloss.Color("#000000")
	if dark {
		fg = lipgloss.Color("#FFFFFF")
	}
	return Colored(fg, lipgloss.Color(hex)).Width(width).Align(lipgloss.Center).Render(label)
}
