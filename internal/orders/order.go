package orders

import "strings"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusInTransit Status = "en_camino"
	StatusWarehouse Status = "en_bodega"
	StatusReceived  Status = "recibido"
	StatusReturned  Status = "devuelto"
)

// Statuses lists every known status in display order.
func Statuses() []Status {
	return []Status{StatusInTransit, StatusWarehouse, StatusReceived, StatusReturned}
}

// ParseStatus normalizes raw and reports whether it names a known status.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusInTransit, StatusWarehouse, StatusReceived, StatusReturned:
		return s, true
	}
	return "", false
}

// Label returns the user facing label.
func (s Status) Label() string {
	switch s {
	case StatusInTransit:
		return "En camino"
	case StatusWarehouse:
		return "En bodega"
	case StatusReceived:
		return "Recibido"
	case StatusReturned:
		return "Devuelto"
	default:
		return "—"
	}
}

// Pending reports whether the order is still on its way to the recipient.
func (s Status) Pending() bool {
	return s == StatusInTransit || s == StatusWarehouse
}

// Terminal reports whether no delivery confirmation can follow s.
func (s Status) Terminal() bool {
	return s == StatusReceived || s == StatusReturned
}

// Kind is the product category shown as a thumbnail.
type Kind string

const (
	KindLaptop  Kind = "laptop"
	KindEarbuds Kind = "earbuds"
	KindCap     Kind = "cap"
	KindOther   Kind = "other"
)

// ParseKind maps unknown values to KindOther.
func ParseKind(raw string) Kind {
	switch k := Kind(strings.ToLower(strings.TrimSpace(raw))); k {
	case KindLaptop, KindEarbuds, KindCap:
		return k
	default:
		return KindOther
	}
}

// Glyph returns a short marker for the product kind.
func (k Kind) Glyph() string {
	switch k {
	case KindLaptop:
		return "💻"
	case KindEarbuds:
		return "🎧"
	case KindCap:
		return "🧢"
	default:
		return "📦"
	}
}

// Order is a trackable shipment.
type Order struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Kind      Kind   `toml:"kind"`
	Status    Status `toml:"status"`
	ETA       string `toml:"eta"`
	Created   string `toml:"created"`
	Shipped   string `toml:"shipped"`
	Delivered string `toml:"delivered,omitempty"`
	Recipient string `toml:"recipient"`
	Address   string `toml:"address"`
	Phone     string `toml:"phone"`
}

// DeliveryLine summarizes when the order arrived or is expected.
func (o Order) DeliveryLine() string {
	if o.Status == StatusReceived {
		return "Entregado " + orDash(o.Delivered)
	}
	return "Entrega estimada " + orDash(o.ETA)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// sameIdentity reports whether the immutable fields of a and b match.
func sameIdentity(a, b Order) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Kind == b.Kind &&
		a.ETA == b.ETA &&
		a.Created == b.Created &&
		a.Shipped == b.Shipped &&
		a.Recipient == b.Recipient &&
		a.Address == b.Address &&
		a.Phone == b.Phone
}
