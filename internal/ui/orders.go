package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/state"
)

type listState struct {
	filter      orders.Filter
	cursor      int
	searching   bool
	query       string
	searchInput textinput.Model
}

func newListState() listState {
	input := textinput.New()
	input.Placeholder = "nombre, código o dirección"
	input.CharLimit = 64
	input.Width = 30
	input.Prompt = "/ "
	return listState{filter: orders.FilterAll, searchInput: input}
}

func (s *listState) startSearch() tea.Cmd {
	s.searching = true
	s.searchInput.SetValue(s.query)
	return s.searchInput.Focus()
}

func (s *listState) stopSearch() {
	s.searching = false
	s.searchInput.Blur()
}

// visibleOrders applies the active tab and search query to the snapshot.
func (m Model) visibleOrders() []orders.Order {
	var out []orders.Order
	for o := range orders.Filtered(m.snapshot.Orders, m.list.filter) {
		if orders.MatchesQuery(o, m.list.query) {
			out = append(out, o)
		}
	}
	return out
}

func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleOrders()

	switch {
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
		m.list.filter = m.list.filter.Next()
		m.list.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
		m.list.filter = m.list.filter.Prev()
		m.list.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Search):
		cmd := m.list.startSearch()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.list.cursor < len(visible)-1 {
			m.list.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.list.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.list.cursor = max(len(visible)-1, 0)
		return m, nil
	}

	o, ok := m.selectedOrder()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Details):
		cmd := m.dispatch(state.SelectOrder{ID: o.ID, To: nav.ScreenOrderDetails})
		return m, cmd
	case key.Matches(msg, m.keys.Map):
		cmd := m.dispatch(state.SelectOrder{ID: o.ID, To: nav.ScreenMap})
		return m, cmd
	case key.Matches(msg, m.keys.Deliver):
		cmd := m.dispatch(state.ConfirmDelivery{ID: o.ID})
		return m, cmd
	case key.Matches(msg, m.keys.Return):
		cmd := m.dispatch(state.MarkReturned{ID: o.ID})
		return m, cmd
	}
	return m, nil
}

// handleSearchInput filters the list as the user types. Enter keeps the
// query, esc clears it.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.list.stopSearch()
		return m, nil
	case "esc":
		m.list.stopSearch()
		m.list.searchInput.SetValue("")
		m.list.query = ""
		m.list.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.list.searchInput, cmd = m.list.searchInput.Update(msg)
	m.list.query = strings.TrimSpace(m.list.searchInput.Value())
	m.list.cursor = 0
	return m, cmd
}

func (m Model) renderOrders() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch {
	case m.list.searching:
		b.WriteString(m.list.searchInput.View())
		b.WriteString("\n")
	case m.list.query != "":
		b.WriteString(styles.MutedText.Render("Búsqueda: ") + styles.Text.Render(m.list.query))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.visibleOrders()
	if len(visible) == 0 {
		if m.list.query != "" {
			b.WriteString(styles.FaintText.Render("Sin resultados para \"" + m.list.query + "\"."))
		} else {
			b.WriteString(styles.FaintText.Render("No hay pedidos en esta categoría."))
		}
		return b.String()
	}

	for i, o := range visible {
		b.WriteString(m.orderCard(o, i == m.list.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTabs renders the status filter tabs with the active one highlighted.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(orders.Filters()))
	for _, f := range orders.Filters() {
		label := " " + f.Label() + " "
		if f == m.list.filter {
			parts = append(parts, styles.Selected.Bold(true).Render(label))
		} else {
			parts = append(parts, styles.MutedText.Render(label))
		}
	}
	return strings.Join(parts, styles.FaintText.Render("│"))
}
