package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of rows taken by header, toast and footer.
const chromeHeight = 4

func (m *Model) initNotesViewport() {
	m.notesViewport = viewport.New(m.contentWidth(), m.notesHeight())
}

func (m *Model) updateNotesViewport() {
	if !m.ready {
		return
	}
	m.notesViewport.Width = m.contentWidth()
	m.notesViewport.Height = m.notesHeight()
	m.notesViewport.SetContent(m.renderNotificationList())
}

func (m Model) notesHeight() int {
	h := m.height - chromeHeight - 2
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.notesViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.notesViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.notesViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.notesViewport.GotoBottom()
	}
	return m, nil
}

func (m Model) renderNotifications() string {
	styles := m.theme.Styles()
	if len(m.snapshot.Notifications) == 0 {
		return styles.FaintText.Render("No tienes notificaciones.")
	}
	header := styles.MutedText.Render(plural(len(m.snapshot.Notifications), "notificación", "notificaciones"))
	return header + "\n\n" + m.notesViewport.View()
}

func (m Model) renderNotificationList() string {
	styles := m.theme.Styles()
	width := m.contentWidth() - 4
	cards := make([]string, 0, len(m.snapshot.Notifications))
	for _, n := range m.snapshot.Notifications {
		head := styles.AccentText.Bold(true).Render(n.From) + "  " + styles.FaintText.Render(n.Time)
		body := styles.Text.Width(width).Render(n.Text)
		cards = append(cards, styles.Panel.Width(width).Render(head+"\n"+body))
	}
	return strings.Join(cards, "\n")
}
