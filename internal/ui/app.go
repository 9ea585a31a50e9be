package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/prefs"
	"github.com/ukm/parcel/internal/route"
	"github.com/ukm/parcel/internal/session"
	"github.com/ukm/parcel/internal/state"
)

const defaultRequestTimeout = 3 * time.Second

// Options configures the UI.
type Options struct {
	Context        context.Context
	Store          *state.Store
	Resolver       route.Resolver
	Authenticator  session.Authenticator
	ToastTTL       time.Duration // zero keeps a toast until it is replaced
	RequestTimeout time.Duration
	Prefs          prefs.Prefs
	PrefsPath      string
}

// Model is the root application state for Bubble Tea. It never mutates
// domain state itself; every change is an intent dispatched to the store,
// followed by a fresh snapshot.
type Model struct {
	ctx            context.Context
	store          *state.Store
	resolver       route.Resolver
	auth           session.Authenticator
	toastTTL       time.Duration
	requestTimeout time.Duration
	prefsPath      string

	prefs  prefs.Prefs
	theme  Theme
	layout layout
	keys   keyMap

	width  int
	height int
	ready  bool

	snapshot   state.Snapshot
	lastScreen nav.Screen
	toastSeq   uint64

	login         loginState
	list          listState
	homeCursor    int
	drawerCursor  int
	mapView       mapState
	settings      settingsState
	notesViewport viewport.Model

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		// The built-in seed always validates.
		store, _ = state.New(state.Options{Authenticator: opts.Authenticator})
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = route.StaticResolver{}
	}

	auth := opts.Authenticator
	if auth == nil {
		auth = session.StubAuthenticator{}
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:            ctx,
		store:          store,
		resolver:       resolver,
		auth:           auth,
		toastTTL:       opts.ToastTTL,
		requestTimeout: timeout,
		prefsPath:      prefsPath,
		keys:           DefaultKeyMap(),
		login:          newLoginState(),
		list:           newListState(),
	}
	m.applyPrefs(opts.Prefs.Normalize())
	m.snapshot = store.Snapshot()
	m.lastScreen = m.snapshot.Screen
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.login.focus()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initNotesViewport()
		}
		m.ready = true
		m.updateNotesViewport()
		return m, nil

	case authResultMsg:
		return m.handleAuthResult(msg)

	case routeMsg:
		return m.handleRoute(msg)

	case toastExpireMsg:
		cmd := m.dispatch(state.DismissToast{Seq: uint64(msg)})
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.snapshot.Screen == nav.ScreenLogin {
		return m.renderLogin()
	}

	return m.renderMain()
}

// handleKey routes keyboard input to the topmost layer: help, login form,
// drawer, search input, global keys, then the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.snapshot.Screen == nav.ScreenLogin {
		return m.handleLoginKey(msg)
	}

	if m.snapshot.DrawerOpen {
		return m.handleDrawerKey(msg)
	}

	if m.list.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.drawerCursor = 0
		cmd := m.dispatch(state.OpenDrawer{})
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		cmd := m.dispatch(state.Back{})
		return m, cmd

	case key.Matches(msg, m.keys.CycleTheme):
		next := m.prefs
		next.Theme = NextTheme(next.Theme)
		cmd := m.savePrefs(next)
		return m, cmd

	case key.Matches(msg, m.keys.GoHome):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenHome})
		return m, cmd

	case key.Matches(msg, m.keys.GoOrders):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenOrders})
		return m, cmd

	case key.Matches(msg, m.keys.GoNotifications):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenNotifications})
		return m, cmd

	case key.Matches(msg, m.keys.GoAccount):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenAccount})
		return m, cmd

	case key.Matches(msg, m.keys.GoSettings):
		cmd := m.dispatch(state.Navigate{To: nav.ScreenSettings})
		return m, cmd
	}

	switch m.snapshot.Screen {
	case nav.ScreenHome:
		return m.handleHomeKey(msg)
	case nav.ScreenOrders:
		return m.handleOrdersKey(msg)
	case nav.ScreenOrderDetails:
		return m.handleDetailKey(msg)
	case nav.ScreenMap:
		return m.handleMapKey(msg)
	case nav.ScreenNotifications:
		return m.handleNotificationsKey(msg)
	case nav.ScreenSettings:
		return m.handleSettingsKey(msg)
	}

	return m, nil
}

// dispatch sends an intent to the store and refreshes the snapshot.
// Rejections are already surfaced by the store as a toast.
func (m *Model) dispatch(in state.Intent) tea.Cmd {
	if err := m.store.Dispatch(m.ctx, in); err != nil {
		log.Printf("ui: %T: %v", in, err)
	}
	return m.sync()
}

// notify raises a toast.
func (m *Model) notify(msg string) tea.Cmd {
	return m.dispatch(state.ShowToast{Message: msg})
}

// sync pulls a snapshot and schedules whatever follow-up work the new state
// needs: toast expiry and route resolution.
func (m *Model) sync() tea.Cmd {
	m.snapshot = m.store.Snapshot()

	var cmds []tea.Cmd

	if t := m.snapshot.Toast; t.Visible() && t.Seq != m.toastSeq {
		m.toastSeq = t.Seq
		if m.toastTTL > 0 {
			cmds = append(cmds, expireToastCmd(t.Seq, m.toastTTL))
		}
	}

	if m.snapshot.Screen != m.lastScreen {
		m.enterScreen(m.snapshot.Screen)
		m.lastScreen = m.snapshot.Screen
	}

	if cmd := m.ensureRoute(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.clampCursors()
	m.updateNotesViewport()

	return tea.Batch(cmds...)
}

// enterScreen resets per-screen state when the active screen changes.
func (m *Model) enterScreen(s nav.Screen) {
	switch s {
	case nav.ScreenLogin:
		m.login.reset()
		m.list = newListState()
		m.homeCursor = 0
		m.mapView = mapState{seq: m.mapView.seq}
	case nav.ScreenSettings:
		m.settings = settingsState{draft: m.prefs}
	case nav.ScreenNotifications:
		m.notesViewport.GotoTop()
	}
	if s != nav.ScreenOrders {
		m.list.stopSearch()
	}
}

func (m *Model) clampCursors() {
	m.list.cursor = clamp(m.list.cursor, 0, len(m.visibleOrders())-1)
	m.homeCursor = clamp(m.homeCursor, 0, len(m.snapshot.Recent(recentCount))-1)
	m.drawerCursor = clamp(m.drawerCursor, 0, len(drawerEntries)-1)
}

// applyPrefs swaps the active theme and layout.
func (m *Model) applyPrefs(p prefs.Prefs) {
	m.prefs = p
	m.theme = GetTheme(p.Theme, p.Contrast)
	m.layout = layoutFor(p.TextSize)
}

// savePrefs applies and persists display preferences.
func (m *Model) savePrefs(p prefs.Prefs) tea.Cmd {
	p = p.Normalize()
	m.applyPrefs(p)
	m.settings.draft = p
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
		return m.notify("No se pudo guardar la configuración.")
	}
	return m.notify("Configuración guardada")
}

// selectedOrder returns the order highlighted on the active list screen.
func (m Model) selectedOrder() (orders.Order, bool) {
	switch m.snapshot.Screen {
	case nav.ScreenHome:
		recent := m.snapshot.Recent(recentCount)
		if m.homeCursor < len(recent) {
			return recent[m.homeCursor], true
		}
	case nav.ScreenOrders:
		visible := m.visibleOrders()
		if m.list.cursor < len(visible) {
			return visible[m.list.cursor], true
		}
	default:
		if m.snapshot.HasSelection {
			return m.snapshot.Selected, true
		}
	}
	return orders.Order{}, false
}

// renderMain renders the signed-in layout.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	content := m.renderContent()
	if m.snapshot.DrawerOpen {
		content = m.renderDrawer(content)
	}
	b.WriteString(content)
	b.WriteString("\n")

	if toast := m.renderToast(); toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the active screen.
func (m Model) renderContent() string {
	var body string
	switch m.snapshot.Screen {
	case nav.ScreenHome:
		body = m.renderHome()
	case nav.ScreenOrders:
		body = m.renderOrders()
	case nav.ScreenOrderDetails:
		body = m.renderDetail()
	case nav.ScreenMap:
		body = m.renderMap()
	case nav.ScreenNotifications:
		body = m.renderNotifications()
	case nav.ScreenAccount:
		body = m.renderAccount()
	case nav.ScreenSettings:
		body = m.renderSettings()
	}
	return m.contentStyle().Render(body)
}

// Messages

type authResultMsg struct {
	identity session.Identity
	err      error
}

type routeMsg struct {
	seq     int
	orderID string
	route   route.Route
	err     error
}

type toastExpireMsg uint64

// Commands

func authenticateCmd(ctx context.Context, auth session.Authenticator, creds session.Credentials, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		id, err := auth.Authenticate(ctx, creds)
		return authResultMsg{identity: id, err: err}
	}
}

func resolveRouteCmd(ctx context.Context, resolver route.Resolver, o orders.Order, seq int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		r, err := resolver.ResolveRoute(ctx, o)
		return routeMsg{seq: seq, orderID: o.ID, route: r, err: err}
	}
}

func expireToastCmd(seq uint64, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpireMsg(seq)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
