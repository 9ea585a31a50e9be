package nav

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a signed-in screen is requested
// without an active session.
var ErrNotAuthenticated = errors.New("sign in required")

// InvalidSelectionError reports an order-scoped screen requested while the
// selection does not resolve to an order.
type InvalidSelectionError struct {
	Screen  Screen
	OrderID string
}

func (e *InvalidSelectionError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("%s needs a selected order", e.Screen)
	}
	return fmt.Sprintf("%s: selected order %q does not exist", e.Screen, e.OrderID)
}

// UnknownOrderError reports a selection request for an id the order store
// does not know.
type UnknownOrderError struct {
	OrderID string
}

func (e *UnknownOrderError) Error() string {
	return fmt.Sprintf("unknown order %q", e.OrderID)
}

// UnreachableError reports a transition missing from the edge table.
type UnreachableError struct {
	From Screen
	To   Screen
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("cannot navigate from %s to %s", e.From, e.To)
}
