package orders

import "fmt"

// NotFoundError reports an id that does not resolve in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %q not found", e.ID)
}

// InvalidTransitionError reports a status change along an edge the
// transition table does not allow.
type InvalidTransitionError struct {
	ID   string
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %q: cannot move from %s to %s", e.ID, e.From, e.To)
}
