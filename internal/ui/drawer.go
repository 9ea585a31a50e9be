package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/state"
)

type drawerEntry struct {
	label  string
	screen nav.Screen
	logout bool
}

var drawerEntries = []drawerEntry{
	{label: "Inicio", screen: nav.ScreenHome},
	{label: "Ver mis pedidos", screen: nav.ScreenOrders},
	{label: "Cuenta", screen: nav.ScreenAccount},
	{label: "Notificaciones", screen: nav.ScreenNotifications},
	{label: "Configuración", screen: nav.ScreenSettings},
	{label: "Cerrar sesión", logout: true},
}

func (m Model) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
		cmd := m.dispatch(state.CloseDrawer{})
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.drawerCursor = (m.drawerCursor - 1 + len(drawerEntries)) % len(drawerEntries)
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Tab):
		m.drawerCursor = (m.drawerCursor + 1) % len(drawerEntries)
	case key.Matches(msg, m.keys.Confirm):
		entry := drawerEntries[m.drawerCursor]
		if entry.logout {
			cmd := m.dispatch(state.Logout{})
			return m, cmd
		}
		cmd := m.dispatch(state.Navigate{To: entry.screen})
		return m, cmd
	}
	return m, nil
}

// renderDrawer places the menu to the left of the screen content.
func (m Model) renderDrawer(content string) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.snapshot.Session.Identity.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(m.snapshot.Session.Identity.Email))
	b.WriteString("\n\n")
	for i, e := range drawerEntries {
		label := e.label
		style := styles.Text
		if e.logout {
			style = styles.DangerText
		}
		if e.screen == m.snapshot.Screen && !e.logout {
			label = "● " + label
		} else {
			label = "  " + label
		}
		if i == m.drawerCursor {
			b.WriteString(styles.Selected.Width(24).Render(label))
		} else {
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}

	drawer := styles.Modal.Width(28).Render(b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, drawer, " ", content)
}
