package tui

import (
	"datepick/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the picker full-screen and returns the value bound when the user
// accepts. Quitting returns ErrCanceled.
func Run(ctrl *picker.Controller, theme string) (*picker.Value, error) {
	applyColorProfilePreference()
	applyThemePreference(theme)

	final, err := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok || !m.Accepted() {
		return nil, ErrCanceled
	}
	return m.Value(), nil
}
