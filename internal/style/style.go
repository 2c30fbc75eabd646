// Package style provides the terminal's Lipgloss themes and styles.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"simterm/internal/session"
)

// promptBlue colors the prompt label in both themes.
var promptBlue = lipgloss.Color("#60a5fa")

var (
	// Success style for positive outcomes
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")). // Green
		Bold(true)

	// Error style for failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")). // Red
		Bold(true)

	// Dim style for secondary information
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Gray

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)
)

// Theme holds one color scheme for the terminal view.
type Theme struct {
	Name       session.Theme
	Background lipgloss.Color
	Foreground lipgloss.Color
}

// Dark is the default scheme: black background, classic green phosphor.
func Dark() Theme {
	return Theme{
		Name:       session.ThemeDark,
		Background: lipgloss.Color("#000000"),
		Foreground: lipgloss.Color("#22c55e"),
	}
}

// Light is the alternate scheme: light gray background, dark text.
func Light() Theme {
	return Theme{
		Name:       session.ThemeLight,
		Background: lipgloss.Color("#f3f4f6"),
		Foreground: lipgloss.Color("#1f2937"),
	}
}

// For maps a session theme to its palette. Anything but light gets dark.
func For(name session.Theme) Theme {
	if name == session.ThemeLight {
		return Light()
	}
	return Dark()
}

// Styles bundles the lipgloss styles derived from one theme.
type Styles struct {
	Theme Theme

	// App wraps the whole view.
	App lipgloss.Style

	// Prompt renders the user@host label.
	Prompt lipgloss.Style

	// Command renders the echoed input line.
	Command lipgloss.Style

	// Output renders a response block, indented behind a left border
	// rule in the prompt color.
	Output lipgloss.Style

	// Input renders the live input text.
	Input lipgloss.Style
}

// NewStyles builds the style bundle for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		App: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground).
			Padding(1, 2),

		Prompt: lipgloss.NewStyle().
			Foreground(promptBlue).
			Bold(true),

		Command: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Output: lipgloss.NewStyle().
			Foreground(t.Foreground).
			MarginLeft(2).
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(promptBlue),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground),
	}
}
