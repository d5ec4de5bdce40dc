package debug

import tea "github.com/charmbracelet/bubbletea"

// Run starts the interactive TUI debugger over target and blocks
// until the user quits.
func Run(target Target) error {
	_, err := tea.NewProgram(New(target)).Run()
	return err
}
