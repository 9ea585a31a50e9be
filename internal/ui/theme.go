package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name     string
	Contrast bool

	Background string
	Surface    string
	SurfaceAlt string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	StatusColors map[orders.Status]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),

		statusColors: t.StatusColors,
		background:   t.Background,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
	Modal    lipgloss.Style

	statusColors map[orders.Status]string
	background   string
	muted        string
}

// StatusStyle returns a badge style for the given order status.
func (s Styles) StatusStyle(status orders.Status) lipgloss.Style {
	color := s.statusColors[status]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// GetTheme resolves a preference name to a palette. System follows the
// terminal background.
func GetTheme(name string, contrast bool) Theme {
	var t Theme
	switch name {
	case prefs.ThemeLight:
		t = lightTheme()
	case prefs.ThemeDark:
		t = darkTheme()
	default:
		if lipgloss.HasDarkBackground() {
			t = darkTheme()
		} else {
			t = lightTheme()
		}
		t.Name = prefs.ThemeSystem
	}
	if contrast {
		t = t.highContrast()
	}
	return t
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return prefs.Themes
}

// highContrast pushes text and borders to the extremes of the palette.
func (t Theme) highContrast() Theme {
	t.Contrast = true
	if t.dark() {
		t.Text, t.Muted, t.Faint = "#ffffff", "#e5e7eb", "#d1d5db"
		t.Border, t.BorderFocus = "#ffffff", "#facc15"
		t.SelectionBg, t.SelectionText = "#facc15", "#000000"
		t.Background, t.Surface = "#000000", "#000000"
	} else {
		t.Text, t.Muted, t.Faint = "#000000", "#1f2937", "#374151"
		t.Border, t.BorderFocus = "#000000", "#1d4ed8"
		t.SelectionBg, t.SelectionText = "#1d4ed8", "#ffffff"
		t.Background, t.Surface = "#ffffff", "#ffffff"
	}
	return t
}

func (t Theme) dark() bool {
	return t.Name == prefs.ThemeDark || t.Background == darkTheme().Background
}

func lightTheme() Theme {
	// Tailwind CSS palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f8fafc", // slate-50
		Surface:    "#e2e8f0", // slate-200
		SurfaceAlt: "#cbd5e1", // slate-300

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#94a3b8", // slate-400
		BorderFocus: "#0284c7", // sky-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#64748b", // slate-500
		Accent:  "#0369a1", // sky-700
		Success: "#15803d", // green-700
		Warning: "#b45309", // amber-700
		Danger:  "#b91c1c", // red-700
		Info:    "#0e7490", // cyan-700

		StatusColors: map[orders.Status]string{
			orders.StatusInTransit: "#0284c7", // sky-600
			orders.StatusWarehouse: "#b45309", // amber-700
			orders.StatusReceived:  "#15803d", // green-700
			orders.StatusReturned:  "#b91c1c", // red-700
		},
	}
}

func darkTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StatusColors: map[orders.Status]string{
			orders.StatusInTransit: "#38bdf8", // sky-400
			orders.StatusWarehouse: "#f59e0b", // amber-500
			orders.StatusReceived:  "#22c55e", // green-500
			orders.StatusReturned:  "#ef4444", // red-500
		},
	}
}

// layout holds the spacing derived from the text size preference.
type layout struct {
	Pad      int // horizontal padding inside the content area
	MaxWidth int // widest the content column may grow
	Gap      int // blank lines between sections
}

func layoutFor(size string) layout {
	switch size {
	case prefs.TextSmall:
		return layout{Pad: 0, MaxWidth: 64, Gap: 0}
	case prefs.TextLarge:
		return layout{Pad: 3, MaxWidth: 100, Gap: 2}
	default:
		return layout{Pad: 1, MaxWidth: 80, Gap: 1}
	}
}
