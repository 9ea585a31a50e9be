package state

import (
	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/session"
)

// Intent is a discrete request for a state change, emitted by a renderer.
type Intent interface {
	intent()
}

// Login validates and authenticates credentials, then lands on Home.
type Login struct {
	Credentials session.Credentials
}

// SessionStarted delivers an identity authenticated outside the store.
type SessionStarted struct {
	Identity session.Identity
}

// Logout ends the session and returns to the login screen.
type Logout struct{}

// Navigate moves to a screen.
type Navigate struct {
	To nav.Screen
}

// SelectOrder selects an order and moves to a screen in one step.
type SelectOrder struct {
	ID string
	To nav.Screen
}

// Back follows the fixed back target of the active screen.
type Back struct{}

// ConfirmDelivery marks an order as received.
type ConfirmDelivery struct {
	ID string
}

// MarkReturned opens a return for a received order.
type MarkReturned struct {
	ID string
}

// OpenDrawer shows the drawer overlay.
type OpenDrawer struct{}

// CloseDrawer hides the drawer overlay.
type CloseDrawer struct{}

// ToggleDrawer flips the drawer overlay.
type ToggleDrawer struct{}

// ShowToast replaces the current notice.
type ShowToast struct {
	Message string
}

// DismissToast clears the notice. A non-zero Seq only clears the toast that
// was shown with that sequence number.
type DismissToast struct {
	Seq uint64
}

func (Login) intent()           {}
func (SessionStarted) intent()  {}
func (Logout) intent()          {}
func (Navigate) intent()        {}
func (SelectOrder) intent()     {}
func (Back) intent()            {}
func (ConfirmDelivery) intent() {}
func (MarkReturned) intent()    {}
func (OpenDrawer) intent()      {}
func (CloseDrawer) intent()     {}
func (ToggleDrawer) intent()    {}
func (ShowToast) intent()       {}
func (DismissToast) intent()    {}
