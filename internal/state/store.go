package state

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/notify"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/session"
)

const (
	defaultAuthTimeout = 3 * time.Second

	welcomeNotice = "Bienvenido"
	logoutNotice  = "Sesión cerrada"
)

// Options configure a Store. Nil collections fall back to the demo seed.
type Options struct {
	Orders        []orders.Order
	Notifications []notify.Notification
	Authenticator session.Authenticator
	AuthTimeout   time.Duration
	Clock         func() time.Time
}

// Snapshot is a copy of everything the renderers need.
type Snapshot struct {
	Screen       nav.Screen
	SelectedID   string
	Selected     orders.Order
	HasSelection bool
	DrawerOpen   bool
	Toast        Toast

	Session  session.Session
	SignedIn bool

	Orders        []orders.Order
	Notifications []notify.Notification

	LastEvent orders.StatusChanged
	HasEvent  bool
	LastError error
}

// Order finds an order in the snapshot.
func (s Snapshot) Order(id string) (orders.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return orders.Order{}, false
}

// Recent returns at most n orders from the front of the list.
func (s Snapshot) Recent(n int) []orders.Order {
	if n > len(s.Orders) {
		n = len(s.Orders)
	}
	if n <= 0 {
		return nil
	}
	return s.Orders[:n]
}

// Store is the single state container. Every change goes through Dispatch,
// which runs one intent to completion before the next is accepted.
type Store struct {
	mu sync.RWMutex

	orders   *orders.Store
	notes    *notify.Store
	sessions *session.Manager
	nav      *nav.Controller
	toast    toastState

	clock       func() time.Time
	authTimeout time.Duration

	lastEvent *orders.StatusChanged
	lastErr   error
}

// New builds a store on the login screen with the first order selected.
func New(opts Options) (*Store, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	seed := opts.Orders
	if seed == nil {
		seed = orders.Seed()
	}
	orderStore, err := orders.NewStore(seed, orders.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	notes := opts.Notifications
	if notes == nil {
		notes = notify.Seed()
	}
	timeout := opts.AuthTimeout
	if timeout <= 0 {
		timeout = defaultAuthTimeout
	}

	sessions := session.NewManager(opts.Authenticator)
	var initial string
	if first, ok := orderStore.First(); ok {
		initial = first.ID
	}

	return &Store{
		orders:      orderStore,
		notes:       notify.NewStore(notes),
		sessions:    sessions,
		nav:         nav.NewController(orderStore, sessions, initial),
		clock:       clock,
		authTimeout: timeout,
	}, nil
}

// Dispatch applies one intent. A rejected intent leaves state unchanged
// apart from the notice describing the failure, and the error is returned to
// the caller.
func (s *Store) Dispatch(ctx context.Context, in Intent) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.apply(ctx, in)
	s.lastErr = err
	if err != nil {
		log.Printf("intent %T rejected: %v", in, err)
		s.toast.show(Notice(err), s.clock())
	}
	return err
}

func (s *Store) apply(ctx context.Context, in Intent) error {
	switch in := in.(type) {
	case Login:
		ctx, cancel := context.WithTimeout(ctx, s.authTimeout)
		defer cancel()
		sess, err := s.sessions.Login(ctx, in.Credentials)
		if err != nil {
			return err
		}
		return s.land(sess)

	case SessionStarted:
		return s.land(s.sessions.Establish(in.Identity))

	case Logout:
		if !s.sessions.Active() && s.nav.Screen() == nav.ScreenLogin {
			s.nav.CloseDrawer()
			return nil
		}
		s.sessions.Logout()
		s.nav.Logout()
		s.toast.show(logoutNotice, s.clock())
		log.Printf("session closed")
		return nil

	case Navigate:
		return s.nav.Navigate(in.To)

	case SelectOrder:
		return s.nav.SelectOrderAndNavigate(in.ID, in.To)

	case Back:
		return s.nav.Back()

	case ConfirmDelivery:
		return s.transition(in.ID, orders.ConfirmDelivery(s.clock()))

	case MarkReturned:
		return s.transition(in.ID, orders.MarkReturned())

	case OpenDrawer:
		s.nav.OpenDrawer()
		return nil

	case CloseDrawer:
		s.nav.CloseDrawer()
		return nil

	case ToggleDrawer:
		s.nav.ToggleDrawer()
		return nil

	case ShowToast:
		s.toast.show(in.Message, s.clock())
		return nil

	case DismissToast:
		s.toast.dismiss(in.Seq)
		return nil

	case nil:
		return errors.New("nil intent")

	default:
		return fmt.Errorf("unsupported intent %T", in)
	}
}

func (s *Store) land(sess session.Session) error {
	if err := s.nav.Navigate(nav.ScreenHome); err != nil {
		return err
	}
	s.toast.show(welcomeNotice, s.clock())
	log.Printf("session %s started for %s", sess.ID, sess.Identity.Email)
	return nil
}

func (s *Store) transition(id string, t orders.Transition) error {
	if !s.sessions.Active() {
		return nav.ErrNotAuthenticated
	}
	ev, err := s.orders.ApplyTransition(id, t)
	if err != nil {
		return err
	}
	s.lastEvent = &ev
	s.toast.show(ev.Notice(), s.clock())
	log.Printf("order %s: %s -> %s", ev.OrderID, ev.From, ev.To)
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Screen:        s.nav.Screen(),
		SelectedID:    s.nav.Selected(),
		DrawerOpen:    s.nav.DrawerOpen(),
		Toast:         s.toast.current,
		Orders:        s.orders.List(),
		Notifications: s.notes.List(),
	}
	if o, err := s.orders.Get(snap.SelectedID); err == nil {
		snap.Selected = o
		snap.HasSelection = true
	}
	if sess, ok := s.sessions.Current(); ok {
		snap.Session = sess
		snap.SignedIn = true
	}
	if s.lastEvent != nil {
		snap.LastEvent = *s.lastEvent
		snap.HasEvent = true
	}
	if s.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", s.lastErr)
	}
	return snap
}

// Consistent reports the first violated navigation invariant, if any.
func (s *Store) Consistent() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nav.Consistent()
}
