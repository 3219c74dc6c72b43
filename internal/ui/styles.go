// Package ui provides the visual styling for the souldos interactive
// shell. Colors follow the semantic palette used across SoulWare tools;
// a plain theme drops all styling for NO_COLOR terminals and pipes.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, identical in light and dark terminals.
var (
	Primary     = lipgloss.Color("#8BC34A") // Lime Green
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
	Muted       = lipgloss.Color("#7a8699")
)

// Theme bundles the styles used by the shell's printed output.
type Theme struct {
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
	Section lipgloss.Style
	Ok      lipgloss.Style
	Fail    lipgloss.Style
	Err     lipgloss.Style
	Dim     lipgloss.Style

	plain bool
}

// NewTheme returns the styled theme, or an unstyled one when noColor is
// set.
func NewTheme(noColor bool) Theme {
	if noColor {
		return Theme{plain: true}
	}
	return Theme{
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 3).
			Align(lipgloss.Center),
		Prompt:  lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Section: lipgloss.NewStyle().Foreground(Info).Bold(true),
		Ok:      lipgloss.NewStyle().Foreground(Success).Bold(true),
		Fail:    lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Err:     lipgloss.NewStyle().Foreground(Warning),
		Dim:     lipgloss.NewStyle().Foreground(Muted),
	}
}

// Plain reports whether the theme renders without styling.
func (t Theme) Plain() bool {
	return t.plain
}

// RenderBanner draws the boot banner box. The plain variant keeps the
// classic asterisk frame for terminals without styling.
func (t Theme) RenderBanner(version string) string {
	title := "Welcome to SoulWare CLI (SoulDOS)"
	ver := "Version " + version
	if !t.plain {
		return t.Banner.Render(title + "\n" + ver)
	}

	const width = 51
	line := strings.Repeat("*", width)
	center := func(s string) string {
		pad := width - 2 - len(s)
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		return "*" + strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left) + "*"
	}
	return strings.Join([]string{line, center(title), center(ver), line}, "\n")
}
