// Package teaui is the full-screen journal: auth, list, calendar, and the
// entry editor, coordinated as one Bubble Tea program.
package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
)

// Run launches the Bubble Tea UI.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
