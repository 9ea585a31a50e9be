package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
)

const appName = "UKM Parcel"

// contentWidth is the usable width of the content column.
func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 || w > m.layout.MaxWidth {
		w = m.layout.MaxWidth
	}
	w -= 2 * m.layout.Pad
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) contentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Width(m.contentWidth()).
		Padding(0, m.layout.Pad)
}

// gap returns the blank lines between sections for the current text size.
func (m Model) gap() string {
	return strings.Repeat("\n", m.layout.Gap+1)
}

// renderHeader renders the top bar: logo, screen title and signed-in user.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("≡ "+appName) + "  " + styles.Text.Bold(true).Render(m.snapshot.Screen.Title())
	right := ""
	if m.snapshot.SignedIn {
		right = styles.MutedText.Render(m.snapshot.Session.Identity.Email)
	}

	width := m.width
	if width <= 0 {
		width = m.layout.MaxWidth
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if space < 1 {
		space = 1
	}
	return styles.Header.Width(width).Render(left + strings.Repeat(" ", space) + right)
}

// renderFooter renders screen-specific key hints followed by the global ones.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bindings := append(m.screenHelp(), m.keys.ShortHelp()...)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.AccentText.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	width := m.width
	if width <= 0 {
		width = m.layout.MaxWidth
	}
	return styles.Footer.Width(width).Render(strings.Join(parts, "  "))
}

func (m Model) screenHelp() []key.Binding {
	k := m.keys
	switch m.snapshot.Screen {
	case nav.ScreenHome:
		return []key.Binding{k.Confirm, k.GoOrders}
	case nav.ScreenOrders:
		return []key.Binding{k.Tab, k.Search, k.Confirm, k.Map, k.Deliver, k.Return}
	case nav.ScreenOrderDetails:
		return []key.Binding{k.Map, k.Deliver, k.Return, k.Photo, k.Review}
	case nav.ScreenMap:
		return []key.Binding{k.Details, k.Call, k.Recenter}
	case nav.ScreenSettings:
		return []key.Binding{k.Left, k.Right, k.Save}
	default:
		return nil
	}
}

// statusBadge renders an order status as a colored chip.
func (m Model) statusBadge(s orders.Status) string {
	return m.theme.Styles().StatusStyle(s).Render(s.Label())
}

// field renders a "label value" row with a fixed label column.
func (m Model) field(label, value string) string {
	styles := m.theme.Styles()
	return styles.MutedText.Width(18).Render(label) + styles.Text.Render(value)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
