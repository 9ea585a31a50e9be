package orders

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout formats the display dates carried by an order.
const DateLayout = "02/01/2006"

// Transition is a pure transformation of an order record. It returns the
// record to store, or an error when the order is not in an acceptable state.
type Transition func(Order) (Order, error)

// transitions is the table of allowed status edges.
var transitions = map[Status][]Status{
	StatusInTransit: {StatusReceived},
	StatusWarehouse: {StatusReceived},
	StatusReceived:  {StatusReturned},
	StatusReturned:  nil,
}

// CanTransition reports whether from -> to is an allowed edge.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ConfirmDelivery marks a pending order as received on the date of at.
func ConfirmDelivery(at time.Time) Transition {
	return func(o Order) (Order, error) {
		if !o.Status.Pending() {
			return o, &InvalidTransitionError{ID: o.ID, From: o.Status, To: StatusReceived}
		}
		o.Status = StatusReceived
		o.Delivered = at.Format(DateLayout)
		return o, nil
	}
}

// MarkReturned opens a return for a received order.
func MarkReturned() Transition {
	return func(o Order) (Order, error) {
		if o.Status != StatusReceived {
			return o, &InvalidTransitionError{ID: o.ID, From: o.Status, To: StatusReturned}
		}
		o.Status = StatusReturned
		return o, nil
	}
}

// StatusChanged is emitted for every transition the store applies.
type StatusChanged struct {
	EventID uuid.UUID
	OrderID string
	From    Status
	To      Status
	At      time.Time
}

// Notice returns the short message shown to the user for the event.
func (e StatusChanged) Notice() string {
	switch e.To {
	case StatusReceived:
		return "Entrega confirmada"
	case StatusReturned:
		return "Solicitud de devolución creada"
	default:
		return "Pedido actualizado: " + e.To.Label()
	}
}
