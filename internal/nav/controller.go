// Package nav implements the screen state machine: the active screen, the
// selected order and the drawer overlay.
package nav

// OrderLookup resolves order ids.
type OrderLookup interface {
	Has(id string) bool
}

// SessionState reports whether a user is signed in.
type SessionState interface {
	Active() bool
}

// Controller owns the active screen, the selected order id and the drawer
// flag. It starts on the login screen.
type Controller struct {
	orders  OrderLookup
	session SessionState

	screen     Screen
	selected   string
	drawerOpen bool
}

// NewController returns a controller on the login screen with selected as
// the initial selection.
func NewController(orders OrderLookup, session SessionState, selected string) *Controller {
	return &Controller{
		orders:   orders,
		session:  session,
		screen:   ScreenLogin,
		selected: selected,
	}
}

// Screen returns the active screen.
func (c *Controller) Screen() Screen { return c.screen }

// Selected returns the selected order id.
func (c *Controller) Selected() string { return c.selected }

// DrawerOpen reports whether the drawer overlay is visible.
func (c *Controller) DrawerOpen() bool { return c.drawerOpen }

// Navigate closes the drawer and moves to the target screen.
func (c *Controller) Navigate(to Screen) error {
	c.drawerOpen = false
	if err := c.checkEdge(to); err != nil {
		return err
	}
	if to.OrderScoped() && !c.resolves(c.selected) {
		return &InvalidSelectionError{Screen: to, OrderID: c.selected}
	}
	c.screen = to
	return nil
}

// SelectOrderAndNavigate selects id and moves to the target screen in one
// step. Nothing changes when either part is rejected.
func (c *Controller) SelectOrderAndNavigate(id string, to Screen) error {
	c.drawerOpen = false
	if !c.resolves(id) {
		return &UnknownOrderError{OrderID: id}
	}
	if err := c.checkEdge(to); err != nil {
		return err
	}
	c.selected = id
	c.screen = to
	return nil
}

// Back moves to the fixed back target of the active screen. Screens without
// one are left as they are.
func (c *Controller) Back() error {
	target, ok := BackTarget(c.screen)
	if !ok {
		c.drawerOpen = false
		return nil
	}
	return c.Navigate(target)
}

// Logout returns to the login screen. No history survives it.
func (c *Controller) Logout() {
	c.drawerOpen = false
	c.screen = ScreenLogin
}

// OpenDrawer shows the drawer.
func (c *Controller) OpenDrawer() { c.drawerOpen = true }

// CloseDrawer hides the drawer.
func (c *Controller) CloseDrawer() { c.drawerOpen = false }

// ToggleDrawer flips the drawer.
func (c *Controller) ToggleDrawer() { c.drawerOpen = !c.drawerOpen }

// Consistent reports the first violated invariant, if any.
func (c *Controller) Consistent() error {
	if !c.screen.Valid() {
		return &UnreachableError{From: c.screen, To: c.screen}
	}
	if c.screen != ScreenLogin && !c.signedIn() {
		return ErrNotAuthenticated
	}
	if c.screen.OrderScoped() && !c.resolves(c.selected) {
		return &InvalidSelectionError{Screen: c.screen, OrderID: c.selected}
	}
	return nil
}

func (c *Controller) checkEdge(to Screen) error {
	if to != ScreenLogin && !c.signedIn() {
		return ErrNotAuthenticated
	}
	if !CanReach(c.screen, to) {
		return &UnreachableError{From: c.screen, To: to}
	}
	return nil
}

func (c *Controller) resolves(id string) bool {
	return id != "" && c.orders != nil && c.orders.Has(id)
}

func (c *Controller) signedIn() bool {
	return c.session != nil && c.session.Active()
}
