package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/prefs"
)

const (
	settingTextSize = iota
	settingTheme
	settingContrast
	settingCount
)

// settingsState holds unsaved edits. Nothing applies until saved.
type settingsState struct {
	cursor int
	draft  prefs.Prefs
}

var textSizeLabels = map[string]string{
	prefs.TextSmall:  "Pequeño",
	prefs.TextMedium: "Mediano",
	prefs.TextLarge:  "Grande",
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.settings.cursor = (m.settings.cursor - 1 + settingCount) % settingCount
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Tab):
		m.settings.cursor = (m.settings.cursor + 1) % settingCount
	case key.Matches(msg, m.keys.Right), msg.String() == " ":
		m.settings.draft = cycleSetting(m.settings.draft, m.settings.cursor, 1)
	case key.Matches(msg, m.keys.Left):
		m.settings.draft = cycleSetting(m.settings.draft, m.settings.cursor, -1)
	case key.Matches(msg, m.keys.Save):
		cmd := m.savePrefs(m.settings.draft)
		return m, cmd
	}
	return m, nil
}

func cycleSetting(p prefs.Prefs, row, step int) prefs.Prefs {
	switch row {
	case settingTextSize:
		p.TextSize = cycle(prefs.TextSizes, p.TextSize, step)
	case settingTheme:
		p.Theme = cycle(prefs.Themes, p.Theme, step)
	case settingContrast:
		p.Contrast = !p.Contrast
	}
	return p
}

func cycle(values []string, current string, step int) string {
	i := slices.Index(values, current)
	if i < 0 {
		return values[0]
	}
	n := len(values)
	return values[((i+step)%n+n)%n]
}

func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	d := m.settings.draft

	contrast := "No"
	if d.Contrast {
		contrast = "Sí"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Tamaño de texto", textSizeLabels[d.TextSize]},
		{"Tema", d.Theme},
		{"Alto contraste", contrast},
	}

	var b strings.Builder
	for i, row := range rows {
		line := styles.MutedText.Width(18).Render(row.label) + "‹ " + row.value + " ›"
		if i == m.settings.cursor {
			line = styles.Selected.Render(" " + row.label + strings.Repeat(" ", max(18-len([]rune(row.label))-1, 1)) + "‹ " + row.value + " › ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.gap())

	if d != m.prefs {
		b.WriteString(styles.WarningText.Render("Cambios sin guardar"))
	} else {
		b.WriteString(styles.FaintText.Render("Guardado en " + m.prefsPath))
	}
	return b.String()
}
