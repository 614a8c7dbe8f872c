// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the journal views.
type Theme struct {
	Header  lipgloss.Style
	Session lipgloss.Style

	Banner lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style

	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Faint        lipgloss.Style

	Panel   lipgloss.Style
	Overlay lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Session: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),

		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Faint:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
		Overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
