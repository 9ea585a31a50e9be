// Package notify holds the notifications shown on the notifications screen.
package notify

import "slices"

// Notification is an immutable message addressed to the user.
type Notification struct {
	ID   string
	From string
	Time string
	Text string
}

// Store is a read-only list of notifications.
type Store struct {
	items []Notification
}

// NewStore copies items into a new store.
func NewStore(items []Notification) *Store {
	return &Store{items: slices.Clone(items)}
}

// List returns a copy of the notifications in arrival order.
func (s *Store) List() []Notification {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Len returns the number of notifications.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Seed returns the demo notifications.
func Seed() []Notification {
	return []Notification{
		{ID: "n1", From: "UKM", Time: "10:30 AM", Text: "Tu pedido está siendo procesado."},
		{ID: "n2", From: "John Doe", Time: "07:53 PM", Text: "Tu pedido está cerca."},
	}
}
