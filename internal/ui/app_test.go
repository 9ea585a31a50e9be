package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/prefs"
	"github.com/ukm/parcel/internal/session"
	"github.com/ukm/parcel/internal/state"
)

var fixedNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

type failingAuth struct{ err error }

func (a failingAuth) Authenticate(ctx context.Context, creds session.Credentials) (session.Identity, error) {
	return session.Identity{}, a.err
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Store == nil {
		store, err := state.New(state.Options{Clock: func() time.Time { return fixedNow }})
		if err != nil {
			t.Fatalf("state.New: %v", err)
		}
		opts.Store = store
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	if opts.Prefs == (prefs.Prefs{}) {
		opts.Prefs = prefs.Prefs{Theme: prefs.ThemeDark, TextSize: prefs.TextMedium}
	}
	m := New(opts)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = send(m, keyMsg(k))
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func signIn(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(m, "ana")
	m = press(m, "enter")
	m = typeText(m, "secreto")
	m, cmd := send(m, keyMsg("enter"))
	if cmd == nil {
		t.Fatalf("submit returned nil cmd, want authentication")
	}
	if !m.login.pending {
		t.Fatalf("login.pending = false after submit")
	}
	m, _ = send(m, cmd())
	return m
}

func TestLogin_BlankFieldsShowNotice(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "enter")

	if m.snapshot.Screen != nav.ScreenLogin {
		t.Fatalf("Screen = %s, want login", m.snapshot.Screen)
	}
	if got, want := m.snapshot.Toast.Message, "Completa usuario y contraseña."; got != want {
		t.Fatalf("Toast = %q, want %q", got, want)
	}
	if m.login.pending {
		t.Fatalf("login.pending = true, want false")
	}
}

func TestLogin_SignsInAndLandsHome(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))

	if m.snapshot.Screen != nav.ScreenHome {
		t.Fatalf("Screen = %s, want home", m.snapshot.Screen)
	}
	if got, want := m.snapshot.Session.Identity.Email, "ana@"+session.DefaultDomain; got != want {
		t.Fatalf("Email = %q, want %q", got, want)
	}
	if got := m.snapshot.Toast.Message; got != "Bienvenido" {
		t.Fatalf("Toast = %q, want Bienvenido", got)
	}
	if !strings.Contains(m.View(), "Pedidos recientes") {
		t.Fatalf("home view missing recent orders section")
	}
}

func TestLogin_AuthFailureStaysOnLogin(t *testing.T) {
	m := newTestModel(t, Options{Authenticator: failingAuth{err: context.DeadlineExceeded}})
	m = typeText(m, "ana")
	m = press(m, "enter")
	m = typeText(m, "secreto")
	m, cmd := send(m, keyMsg("enter"))
	m, _ = send(m, cmd())

	if m.snapshot.Screen != nav.ScreenLogin {
		t.Fatalf("Screen = %s, want login", m.snapshot.Screen)
	}
	if got, want := m.snapshot.Toast.Message, "El servicio no respondió a tiempo."; got != want {
		t.Fatalf("Toast = %q, want %q", got, want)
	}
	if m.login.pending {
		t.Fatalf("login.pending = true after failure")
	}
	if v := m.login.inputs[fieldSecret].Value(); v != "" {
		t.Fatalf("secret = %q, want cleared", v)
	}
}

func TestLogin_GlobalKeysAreTyped(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(m, "qm?")

	if got := m.login.inputs[fieldUser].Value(); got != "qm?" {
		t.Fatalf("user = %q, want %q", got, "qm?")
	}
	if m.showHelp || m.snapshot.DrawerOpen {
		t.Fatalf("global keys fired on the login screen")
	}
}

func TestOrders_TabsFilterByStatus(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "o", "tab")

	if m.list.filter != orders.FilterInTransit {
		t.Fatalf("filter = %v, want in transit", m.list.filter)
	}
	visible := m.visibleOrders()
	if len(visible) != 1 || visible[0].Status != orders.StatusInTransit {
		t.Fatalf("visible = %+v, want the single in-transit order", visible)
	}

	m = press(m, "tab", "tab")
	if m.list.filter != orders.FilterReturned {
		t.Fatalf("filter = %v, want returned", m.list.filter)
	}
	if got := len(m.visibleOrders()); got != 0 {
		t.Fatalf("len(visible) = %d, want 0", got)
	}
	if !strings.Contains(m.View(), "No hay pedidos en esta categoría.") {
		t.Fatalf("empty tab message missing")
	}
}

func TestOrders_ConfirmDeliveryOnce(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "o", "c")

	o, _ := m.snapshot.Order("RR19703494429BCL")
	if o.Status != orders.StatusReceived {
		t.Fatalf("Status = %s, want recibido", o.Status)
	}
	if o.Delivered != "16/10/2026" {
		t.Fatalf("Delivered = %q, want 16/10/2026", o.Delivered)
	}
	if got := m.snapshot.Toast.Message; got != "Entrega confirmada" {
		t.Fatalf("Toast = %q, want Entrega confirmada", got)
	}

	m = press(m, "c")
	if got := m.snapshot.Toast.Message; !strings.HasPrefix(got, "No se puede pasar") {
		t.Fatalf("Toast = %q, want invalid transition notice", got)
	}
}

func TestOrders_SearchNarrowsAndClears(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "o", "/")
	if !m.list.searching {
		t.Fatalf("searching = false after /")
	}
	m = typeText(m, "buds")

	visible := m.visibleOrders()
	if len(visible) != 1 || visible[0].ID != "RR19703494429BC2" {
		t.Fatalf("visible = %+v, want only the earbuds", visible)
	}

	// Letters typed while searching never reach the global key map.
	if m.snapshot.Screen != nav.ScreenOrders {
		t.Fatalf("Screen = %s, want orders", m.snapshot.Screen)
	}

	m = press(m, "esc")
	if m.list.searching || m.list.query != "" {
		t.Fatalf("search not cleared: searching=%v query=%q", m.list.searching, m.list.query)
	}
	if got := len(m.visibleOrders()); got != 3 {
		t.Fatalf("len(visible) = %d, want 3", got)
	}
}

func TestDetailMapAndBack(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "o", "down", "enter")

	if m.snapshot.Screen != nav.ScreenOrderDetails {
		t.Fatalf("Screen = %s, want orderDetails", m.snapshot.Screen)
	}
	if m.snapshot.SelectedID != "RR19703494429BC2" {
		t.Fatalf("SelectedID = %q, want second order", m.snapshot.SelectedID)
	}

	m, cmd := send(m, keyMsg("v"))
	if m.snapshot.Screen != nav.ScreenMap {
		t.Fatalf("Screen = %s, want map", m.snapshot.Screen)
	}
	if cmd == nil || !m.mapView.loading {
		t.Fatalf("route lookup not started")
	}
	m, _ = send(m, cmd())
	if m.mapView.loading || m.mapView.err != nil {
		t.Fatalf("mapView = %+v, want resolved route", m.mapView)
	}
	if m.mapView.route.OrderID != "RR19703494429BC2" {
		t.Fatalf("route.OrderID = %q, want second order", m.mapView.route.OrderID)
	}
	if !strings.Contains(m.View(), "Repartidor") {
		t.Fatalf("map view missing courier row")
	}

	m = press(m, "esc")
	if m.snapshot.Screen != nav.ScreenOrders {
		t.Fatalf("Screen = %s, want orders after back", m.snapshot.Screen)
	}
}

func TestDemoActionsRaiseToast(t *testing.T) {
	m := newTestModel(t, Options{})
	for _, tc := range []struct {
		key  string
		want string
	}{
		{"ctrl+r", "recuperar tu contraseña"},
		{"ctrl+n", "registro"},
		{"ctrl+g", "Google"},
	} {
		m = press(m, tc.key)
		if got := m.snapshot.Toast.Message; !strings.Contains(got, tc.want) {
			t.Fatalf("%s: toast = %q, want it to contain %q", tc.key, got, tc.want)
		}
	}
	if m.snapshot.Screen != nav.ScreenLogin {
		t.Fatalf("Screen = %s, want login", m.snapshot.Screen)
	}

	m = signIn(t, m)
	m = press(m, "o", "enter")
	for _, tc := range []struct {
		key  string
		want string
	}{
		{"f", "Foto de entrega"},
		{"w", "reseña"},
	} {
		m = press(m, tc.key)
		if got := m.snapshot.Toast.Message; !strings.Contains(got, tc.want) {
			t.Fatalf("%s: toast = %q, want it to contain %q", tc.key, got, tc.want)
		}
	}

	m, cmd := send(m, keyMsg("v"))
	m, _ = send(m, cmd())
	courier := m.mapView.route.Courier
	m = press(m, "L")
	if got, want := m.snapshot.Toast.Message, "Llamando a "+courier+"..."; got != want {
		t.Fatalf("toast = %q, want %q", got, want)
	}

	seq := m.mapView.seq
	m, _ = send(m, keyMsg("0"))
	if m.mapView.seq != seq+1 || !m.mapView.loading {
		t.Fatalf("recenter did not restart the route lookup")
	}
	if got := m.snapshot.Toast.Message; got != "Mapa centrado" {
		t.Fatalf("toast = %q, want %q", got, "Mapa centrado")
	}
}

func TestRoute_StaleResultDropped(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m, cmd := send(m, keyMsg("enter")) // home -> map for the first recent order
	if cmd == nil {
		t.Fatalf("route lookup not started")
	}
	seq := m.mapView.seq

	m, _ = send(m, routeMsg{seq: seq - 1, orderID: "old"})
	if !m.mapView.loading {
		t.Fatalf("stale result was applied")
	}
	m, _ = send(m, cmd())
	if m.mapView.loading {
		t.Fatalf("current result was dropped")
	}
}

func TestDrawer_LogoutReturnsToLogin(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "m")
	if !m.snapshot.DrawerOpen {
		t.Fatalf("drawer closed after m")
	}
	m = press(m, "up", "enter")

	if m.snapshot.Screen != nav.ScreenLogin || m.snapshot.SignedIn {
		t.Fatalf("Screen = %s signedIn=%v, want login signed out", m.snapshot.Screen, m.snapshot.SignedIn)
	}
	if m.snapshot.DrawerOpen {
		t.Fatalf("drawer still open after logout")
	}
	if v := m.login.inputs[fieldUser].Value(); v != "" {
		t.Fatalf("user field = %q, want cleared", v)
	}
	if got := m.snapshot.Toast.Message; got != "Sesión cerrada" {
		t.Fatalf("Toast = %q, want Sesión cerrada", got)
	}
}

func TestDrawer_NavigatesAndCloses(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "m", "down", "down", "down", "enter")

	if m.snapshot.Screen != nav.ScreenNotifications {
		t.Fatalf("Screen = %s, want notifications", m.snapshot.Screen)
	}
	if m.snapshot.DrawerOpen {
		t.Fatalf("drawer still open after navigating")
	}
	if !strings.Contains(m.View(), "Tu pedido está cerca.") {
		t.Fatalf("notifications view missing seed message")
	}
}

func TestToastTTL_ExpiresOnlyMatchingToast(t *testing.T) {
	m := newTestModel(t, Options{ToastTTL: time.Second})
	m, first := send(m, keyMsg("enter"))
	if first == nil {
		t.Fatalf("no expiry scheduled for toast")
	}
	firstSeq := m.snapshot.Toast.Seq

	m = press(m, "ctrl+n")
	if m.snapshot.Toast.Seq == firstSeq {
		t.Fatalf("second toast did not replace the first")
	}

	m, _ = send(m, toastExpireMsg(firstSeq))
	if !m.snapshot.Toast.Visible() {
		t.Fatalf("expiry of an old toast cleared the new one")
	}
	m, _ = send(m, toastExpireMsg(m.snapshot.Toast.Seq))
	if m.snapshot.Toast.Visible() {
		t.Fatalf("toast still visible after its expiry")
	}
}

func TestSettings_SavePersistsPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := signIn(t, newTestModel(t, Options{PrefsPath: path}))
	m = press(m, "s", "right")

	if m.settings.draft.TextSize != prefs.TextLarge {
		t.Fatalf("draft.TextSize = %q, want L", m.settings.draft.TextSize)
	}
	if m.prefs.TextSize != prefs.TextMedium {
		t.Fatalf("prefs applied before saving")
	}

	m = press(m, "down", "down", "right", "enter")
	if m.prefs.TextSize != prefs.TextLarge || !m.prefs.Contrast {
		t.Fatalf("prefs = %+v, want large text with contrast", m.prefs)
	}
	if !m.theme.Contrast {
		t.Fatalf("theme not switched to high contrast")
	}
	if got := m.snapshot.Toast.Message; got != "Configuración guardada" {
		t.Fatalf("Toast = %q, want Configuración guardada", got)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("prefs file not written: %v", err)
	}
	loaded, _ := prefs.Load(path)
	if loaded != m.prefs {
		t.Fatalf("loaded = %+v, want %+v", loaded, m.prefs)
	}
}

func TestHelp_AnyKeyCloses(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	m = press(m, "?")
	if !m.showHelp {
		t.Fatalf("showHelp = false after ?")
	}
	if !strings.Contains(m.View(), "Atajos de teclado") {
		t.Fatalf("help overlay not rendered")
	}
	m = press(m, "o")
	if m.showHelp {
		t.Fatalf("help still open")
	}
	if m.snapshot.Screen != nav.ScreenHome {
		t.Fatalf("key that closed help also navigated to %s", m.snapshot.Screen)
	}
}

func TestView_RendersEveryScreen(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	for _, s := range []string{"i", "o", "n", "a", "s"} {
		m = press(m, s)
		title := m.snapshot.Screen.Title()
		if !strings.Contains(m.View(), title) {
			t.Fatalf("view for %s missing title %q", m.snapshot.Screen, title)
		}
	}
}

func TestQuit(t *testing.T) {
	m := signIn(t, newTestModel(t, Options{}))
	_, cmd := send(m, keyMsg("q"))
	if cmd == nil {
		t.Fatalf("q returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}
