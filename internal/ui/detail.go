package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/state"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o, ok := m.selectedOrder()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Map):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenMap})
		return m, cmd
	case key.Matches(msg, m.keys.Deliver):
		cmd := m.dispatch(state.ConfirmDelivery{ID: o.ID})
		return m, cmd
	case key.Matches(msg, m.keys.Return):
		cmd := m.dispatch(state.MarkReturned{ID: o.ID})
		return m, cmd
	case key.Matches(msg, m.keys.Photo):
		cmd := m.notify("Foto de entrega descargada.")
		return m, cmd
	case key.Matches(msg, m.keys.Review):
		cmd := m.notify("Gracias, pronto podrás escribir tu reseña.")
		return m, cmd
	}
	return m, nil
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	if !m.snapshot.HasSelection {
		return styles.FaintText.Render("Selecciona un pedido.")
	}
	o := m.snapshot.Selected

	var b strings.Builder
	b.WriteString(o.Kind.Glyph() + "  " + styles.Text.Bold(true).Render(o.Name))
	b.WriteString("  ")
	b.WriteString(m.statusBadge(o.Status))
	b.WriteString(m.gap())

	rows := []string{
		m.field("Código", o.ID),
		m.field("Creado", orDash(o.Created)),
		m.field("Enviado", orDash(o.Shipped)),
	}
	if o.Status == orders.StatusReceived {
		rows = append(rows, m.field("Entregado", orDash(o.Delivered)))
	} else {
		rows = append(rows, m.field("Entrega estimada", orDash(o.ETA)))
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString(m.gap())

	b.WriteString(styles.AccentText.Bold(true).Render("Destinatario"))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		m.field("Nombre", orDash(o.Recipient)),
		m.field("Dirección", orDash(o.Address)),
		m.field("Teléfono", orDash(o.Phone)),
	}, "\n"))
	b.WriteString(m.gap())

	b.WriteString(m.renderTimeline(o.Status))
	b.WriteString(m.gap())
	b.WriteString(m.renderActions(o))
	return b.String()
}

// renderTimeline draws the delivery progress as a row of steps.
func (m Model) renderTimeline(s orders.Status) string {
	styles := m.theme.Styles()
	steps := []orders.Status{orders.StatusWarehouse, orders.StatusInTransit, orders.StatusReceived}
	reached := map[orders.Status]int{
		orders.StatusWarehouse: 0,
		orders.StatusInTransit: 1,
		orders.StatusReceived:  2,
		orders.StatusReturned:  2,
	}[s]

	parts := make([]string, 0, len(steps)+1)
	for i, step := range steps {
		label := step.Label()
		if i <= reached {
			parts = append(parts, styles.SuccessText.Render("● "+label))
		} else {
			parts = append(parts, styles.FaintText.Render("○ "+label))
		}
	}
	if s == orders.StatusReturned {
		parts = append(parts, styles.DangerText.Render("● "+s.Label()))
	}
	return strings.Join(parts, styles.FaintText.Render(" ── "))
}

// renderActions lists the transitions available for the order.
func (m Model) renderActions(o orders.Order) string {
	styles := m.theme.Styles()
	var parts []string
	if orders.CanTransition(o.Status, orders.StatusReceived) {
		parts = append(parts, styles.AccentText.Render("c")+" "+styles.Text.Render("Confirmar entrega"))
	}
	if orders.CanTransition(o.Status, orders.StatusReturned) {
		parts = append(parts, styles.AccentText.Render("r")+" "+styles.Text.Render("Solicitar devolución"))
	}
	parts = append(parts, styles.AccentText.Render("v")+" "+styles.Text.Render("Ver en mapa"))
	return strings.Join(parts, "   ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
