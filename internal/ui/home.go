package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/state"
)

const recentCount = 3

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recent := m.snapshot.Recent(recentCount)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.homeCursor < len(recent)-1 {
			m.homeCursor++
		}
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Map):
		if o, ok := m.selectedOrder(); ok {
			cmd := m.dispatch(state.SelectOrder{ID: o.ID, To: nav.ScreenMap})
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) renderHome() string {
	styles := m.theme.Styles()
	var b strings.Builder

	name := m.snapshot.Session.Identity.Name
	b.WriteString(styles.Text.Bold(true).Render("Hola, " + name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.pendingSummary()))
	b.WriteString(m.gap())

	b.WriteString(styles.AccentText.Bold(true).Render("Pedidos recientes"))
	b.WriteString("\n")

	recent := m.snapshot.Recent(recentCount)
	if len(recent) == 0 {
		b.WriteString(styles.FaintText.Render("No tienes pedidos."))
		return b.String()
	}
	for i, o := range recent {
		b.WriteString(m.orderCard(o, i == m.homeCursor))
		b.WriteString("\n")
	}
	return b.String()
}

// pendingSummary counts orders still on their way.
func (m Model) pendingSummary() string {
	n := 0
	for _, o := range m.snapshot.Orders {
		if o.Status.Pending() {
			n++
		}
	}
	if n == 0 {
		return "No tienes envíos pendientes."
	}
	return fmt.Sprintf("Tienes %s en curso.", plural(n, "envío", "envíos"))
}

// orderCard renders an order as a bordered card used by home and the list.
func (m Model) orderCard(o orders.Order, selected bool) string {
	styles := m.theme.Styles()
	width := m.contentWidth() - 4

	title := o.Kind.Glyph() + "  " + styles.Text.Bold(true).Render(truncate(o.Name, width-20))
	lines := []string{
		title + "  " + m.statusBadge(o.Status),
		styles.MutedText.Render(o.ID),
		styles.Text.Render(o.DeliveryLine()),
	}

	card := styles.Panel.Width(width)
	if selected {
		card = card.BorderForeground(styles.AccentText.GetForeground())
	}
	return card.Render(strings.Join(lines, "\n"))
}
