package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Menu       key.Binding
	Back       key.Binding
	CycleTheme key.Binding

	// Menu shortcuts
	GoHome          key.Binding
	GoOrders        key.Binding
	GoNotifications key.Binding
	GoAccount       key.Binding
	GoSettings      key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Confirm  key.Binding

	// Orders
	Search  key.Binding
	Deliver key.Binding
	Return  key.Binding
	Map     key.Binding
	Details key.Binding

	// Demo actions
	Photo    key.Binding
	Review   key.Binding
	Call     key.Binding
	Recenter key.Binding
	Forgot   key.Binding
	Register key.Binding
	Social   key.Binding

	// Settings
	Save key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Salir"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Ayuda"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Menú"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Volver"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cambiar tema"),
		),

		GoHome: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Inicio"),
		),
		GoOrders: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Ver mis pedidos"),
		),
		GoNotifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Notificaciones"),
		),
		GoAccount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Cuenta"),
		),
		GoSettings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Configuración"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Bajar"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Anterior"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Siguiente"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Primero"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Último"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Siguiente pestaña"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Pestaña anterior"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Abrir"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Buscar"),
		),
		Deliver: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Confirmar entrega"),
		),
		Return: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Solicitar devolución"),
		),
		Map: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Ver en mapa"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Ver detalles"),
		),

		Photo: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Descargar foto"),
		),
		Review: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Escribir reseña"),
		),
		Call: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Llamar al repartidor"),
		),
		Recenter: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Centrar mapa"),
		),
		Forgot: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Olvidé mi contraseña"),
		),
		Register: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "Crear cuenta"),
		),
		Social: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "Ingresar con Google"),
		),

		Save: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "Guardar"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.GoHome, k.GoOrders, k.GoNotifications, k.GoAccount, k.GoSettings, k.Back},
		{k.Up, k.Down, k.Tab, k.Confirm, k.Top, k.Bottom},
		{k.Search, k.Details, k.Map, k.Deliver, k.Return},
		{k.Photo, k.Review, k.Call, k.Recenter},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
