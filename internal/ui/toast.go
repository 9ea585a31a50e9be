package ui

import "github.com/charmbracelet/lipgloss"

// renderToast renders the current notice, or nothing.
func (m Model) renderToast() string {
	t := m.snapshot.Toast
	if !t.Visible() {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Bold(true).
		Padding(0, 2).
		Render(t.Message)
}
