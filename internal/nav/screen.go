package nav

// Screen identifies the single active top-level view.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenOrders
	ScreenOrderDetails
	ScreenMap
	ScreenNotifications
	ScreenAccount
	ScreenSettings
)

// Screens lists every screen.
func Screens() []Screen {
	return []Screen{
		ScreenLogin,
		ScreenHome,
		ScreenOrders,
		ScreenOrderDetails,
		ScreenMap,
		ScreenNotifications,
		ScreenAccount,
		ScreenSettings,
	}
}

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenHome:
		return "home"
	case ScreenOrders:
		return "orders"
	case ScreenOrderDetails:
		return "orderDetails"
	case ScreenMap:
		return "map"
	case ScreenNotifications:
		return "notifications"
	case ScreenAccount:
		return "account"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Title is the heading shown in the top bar.
func (s Screen) Title() string {
	switch s {
	case ScreenOrders:
		return "TUS PEDIDOS"
	case ScreenOrderDetails:
		return "DETALLES DE PEDIDO"
	case ScreenMap:
		return "SEGUIMIENTO"
	case ScreenNotifications:
		return "NOTIFICACIONES"
	case ScreenAccount:
		return "MI CUENTA"
	case ScreenSettings:
		return "CONFIGURACIÓN"
	case ScreenHome:
		return "INICIO"
	default:
		return ""
	}
}

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	return s >= ScreenLogin && s <= ScreenSettings
}

// OrderScoped reports whether the screen renders the selected order.
func (s Screen) OrderScoped() bool {
	return s == ScreenOrderDetails || s == ScreenMap
}

// menuTargets are reachable from every signed-in screen through the drawer
// or the top bar.
var menuTargets = map[Screen]bool{
	ScreenHome:          true,
	ScreenOrders:        true,
	ScreenNotifications: true,
	ScreenAccount:       true,
	ScreenSettings:      true,
}

// edges lists the screen-specific forward transitions.
var edges = map[Screen][]Screen{
	ScreenLogin:        {ScreenHome},
	ScreenHome:         {ScreenMap},
	ScreenOrders:       {ScreenOrderDetails, ScreenMap},
	ScreenOrderDetails: {ScreenMap},
	ScreenMap:          {ScreenOrderDetails},
}

// backTargets are the fixed destinations of the back action.
var backTargets = map[Screen]Screen{
	ScreenOrders:        ScreenHome,
	ScreenOrderDetails:  ScreenOrders,
	ScreenMap:           ScreenOrders,
	ScreenNotifications: ScreenHome,
	ScreenAccount:       ScreenHome,
	ScreenSettings:      ScreenHome,
}

// BackTarget returns where the back action leads from s.
func BackTarget(s Screen) (Screen, bool) {
	target, ok := backTargets[s]
	return target, ok
}

// CanReach reports whether the edge table allows from -> to. Logging out is
// not an edge; it is handled by Controller.Logout.
func CanReach(from, to Screen) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	if to == ScreenLogin {
		return false
	}
	if from != ScreenLogin && menuTargets[to] {
		return true
	}
	for _, next := range edges[from] {
		if next == to {
			return true
		}
	}
	return false
}
