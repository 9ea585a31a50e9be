package ui

import (
	"fmt"
	"strings"

	"github.com/ukm/parcel/internal/orders"
)

func (m Model) renderAccount() string {
	styles := m.theme.Styles()
	sess := m.snapshot.Session

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(sess.Identity.Name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(sess.Identity.Email))
	b.WriteString(m.gap())

	b.WriteString(strings.Join([]string{
		m.field("Sesión", sess.ID.String()[:8]),
		m.field("Desde", sess.StartedAt.Format("02/01/2006 15:04")),
	}, "\n"))
	b.WriteString(m.gap())

	b.WriteString(styles.AccentText.Bold(true).Render("Tus pedidos"))
	b.WriteString("\n")
	counts := make(map[orders.Status]int)
	for _, o := range m.snapshot.Orders {
		counts[o.Status]++
	}
	rows := make([]string, 0, len(orders.Statuses()))
	for _, s := range orders.Statuses() {
		rows = append(rows, m.field(s.Label(), fmt.Sprintf("%d", counts[s])))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}
