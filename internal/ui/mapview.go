package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/route"
	"github.com/ukm/parcel/internal/state"
)

// mapState tracks the route shown on the map screen. seq discards results of
// lookups that were superseded before they returned.
type mapState struct {
	seq     int
	orderID string
	status  orders.Status
	loading bool
	route   route.Route
	err     error
}

// ensureRoute starts a lookup when the map shows an order whose route is
// missing or stale.
func (m *Model) ensureRoute() tea.Cmd {
	if m.snapshot.Screen != nav.ScreenMap || !m.snapshot.HasSelection {
		return nil
	}
	o := m.snapshot.Selected
	if m.mapView.orderID == o.ID && m.mapView.status == o.Status {
		return nil
	}
	return m.startRoute(o)
}

func (m *Model) startRoute(o orders.Order) tea.Cmd {
	m.mapView = mapState{
		seq:     m.mapView.seq + 1,
		orderID: o.ID,
		status:  o.Status,
		loading: true,
	}
	return resolveRouteCmd(m.ctx, m.resolver, o, m.mapView.seq, m.requestTimeout)
}

func (m Model) handleRoute(msg routeMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.mapView.seq {
		return m, nil
	}
	m.mapView.loading = false
	m.mapView.route = msg.route
	m.mapView.err = msg.err
	if msg.err != nil {
		log.Printf("route %s: %v", msg.orderID, msg.err)
		cmd := m.notify(state.Notice(msg.err))
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Details):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenOrderDetails})
		return m, cmd
	case key.Matches(msg, m.keys.Call):
		courier := m.mapView.route.Courier
		if courier == "" {
			courier = "el repartidor"
		}
		cmd := m.notify("Llamando a " + courier + "...")
		return m, cmd
	case key.Matches(msg, m.keys.Recenter):
		if !m.snapshot.HasSelection {
			return m, nil
		}
		cmd := tea.Batch(m.startRoute(m.snapshot.Selected), m.notify("Mapa centrado"))
		return m, cmd
	}
	return m, nil
}

func (m Model) renderMap() string {
	styles := m.theme.Styles()
	if !m.snapshot.HasSelection {
		return styles.FaintText.Render("Selecciona un pedido.")
	}
	o := m.snapshot.Selected

	var b strings.Builder
	b.WriteString(o.Kind.Glyph() + "  " + styles.Text.Bold(true).Render(o.Name) + "  " + m.statusBadge(o.Status))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(o.DeliveryLine()))
	b.WriteString(m.gap())

	switch {
	case m.mapView.loading:
		b.WriteString(styles.WarningText.Render("Cargando ruta..."))
		return b.String()
	case m.mapView.err != nil:
		b.WriteString(styles.DangerText.Render("No se pudo cargar la ruta."))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("0 para reintentar"))
		return b.String()
	case m.mapView.orderID != o.ID:
		return b.String()
	}

	r := m.mapView.route
	b.WriteString(styles.Panel.Render(m.renderGrid(r)))
	b.WriteString("\n")
	b.WriteString(m.renderLegend())
	b.WriteString(m.gap())
	b.WriteString(strings.Join([]string{
		m.field("Origen", r.Origin),
		m.field("Destino", r.Destination),
		m.field("Distancia", fmt.Sprintf("%.1f km", r.DistanceKm)),
		m.field("Repartidor", r.Courier),
	}, "\n"))
	return b.String()
}

// renderGrid colors each cell of the rasterized route.
func (m Model) renderGrid(r route.Route) string {
	styles := m.theme.Styles()
	cell := map[rune]lipgloss.Style{
		route.CellEmpty:       styles.FaintText,
		route.CellPath:        styles.AccentText,
		route.CellOrigin:      styles.WarningText.Bold(true),
		route.CellDestination: styles.SuccessText,
		route.CellParcel:      styles.DangerText,
	}
	grid := r.Grid()
	rows := make([]string, len(grid))
	for y, row := range grid {
		var line strings.Builder
		for _, c := range row {
			line.WriteString(cell[c].Render(string(c)))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderLegend() string {
	styles := m.theme.Styles()
	return strings.Join([]string{
		styles.WarningText.Bold(true).Render(string(route.CellOrigin)) + styles.MutedText.Render(" origen"),
		styles.SuccessText.Render(string(route.CellDestination)) + styles.MutedText.Render(" destino"),
		styles.DangerText.Render(string(route.CellParcel)) + styles.MutedText.Render(" tu pedido"),
	}, "   ")
}
