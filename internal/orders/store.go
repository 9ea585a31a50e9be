package orders

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store holds the order collection. It is not safe for concurrent use; the
// state container serializes access to it.
type Store struct {
	orders []Order
	index  map[string]int
	clock  func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source stamped on emitted events.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewStore builds a store from seed records, preserving their order.
func NewStore(seed []Order, opts ...Option) (*Store, error) {
	s := &Store{
		orders: make([]Order, 0, len(seed)),
		index:  make(map[string]int, len(seed)),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	for i, o := range seed {
		o.ID = strings.TrimSpace(o.ID)
		if o.ID == "" {
			return nil, fmt.Errorf("order %d: id is empty", i)
		}
		if _, dup := s.index[o.ID]; dup {
			return nil, fmt.Errorf("order %q: duplicate id", o.ID)
		}
		status, ok := ParseStatus(string(o.Status))
		if !ok {
			return nil, fmt.Errorf("order %q: unknown status %q", o.ID, o.Status)
		}
		o.Status = status
		o.Kind = ParseKind(string(o.Kind))
		s.index[o.ID] = len(s.orders)
		s.orders = append(s.orders, o)
	}
	return s, nil
}

// Len returns the number of orders.
func (s *Store) Len() int {
	return len(s.orders)
}

// List returns a copy of every order in insertion order.
func (s *Store) List() []Order {
	return slices.Clone(s.orders)
}

// Recent returns at most n orders from the front of the collection.
func (s *Store) Recent(n int) []Order {
	if n <= 0 {
		return nil
	}
	if n > len(s.orders) {
		n = len(s.orders)
	}
	return slices.Clone(s.orders[:n])
}

// First returns the first order, if any.
func (s *Store) First() (Order, bool) {
	if len(s.orders) == 0 {
		return Order{}, false
	}
	return s.orders[0], true
}

// Get looks up an order by id.
func (s *Store) Get(id string) (Order, error) {
	i, ok := s.index[id]
	if !ok {
		return Order{}, &NotFoundError{ID: id}
	}
	return s.orders[i], nil
}

// Has reports whether id resolves to an order.
func (s *Store) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// ApplyTransition is the only mutation path. It runs t against the current
// record, checks the result against the transition table and replaces the
// record in place.
func (s *Store) ApplyTransition(id string, t Transition) (StatusChanged, error) {
	i, ok := s.index[id]
	if !ok {
		return StatusChanged{}, &NotFoundError{ID: id}
	}
	if t == nil {
		return StatusChanged{}, fmt.Errorf("order %q: nil transition", id)
	}

	prev := s.orders[i]
	next, err := t(prev)
	if err != nil {
		return StatusChanged{}, err
	}
	if !sameIdentity(prev, next) {
		return StatusChanged{}, fmt.Errorf("order %q: transition rewrote immutable fields", id)
	}
	if !CanTransition(prev.Status, next.Status) {
		return StatusChanged{}, &InvalidTransitionError{ID: id, From: prev.Status, To: next.Status}
	}
	if next.Delivered != prev.Delivered && next.Status != StatusReceived {
		return StatusChanged{}, &InvalidTransitionError{ID: id, From: prev.Status, To: next.Status}
	}

	s.orders[i] = next
	return StatusChanged{
		EventID: uuid.New(),
		OrderID: id,
		From:    prev.Status,
		To:      next.Status,
		At:      s.clock(),
	}, nil
}

// FilterByStatus returns a lazy view over the store. Ranging over it again
// reflects transitions applied in between.
func (s *Store) FilterByStatus(f Filter) iter.Seq[Order] {
	return func(yield func(Order) bool) {
		for o := range Filtered(s.orders, f) {
			if !yield(o) {
				return
			}
		}
	}
}

// Search returns a lazy view of orders matching query.
func (s *Store) Search(query string) iter.Seq[Order] {
	return func(yield func(Order) bool) {
		for o := range Searched(s.orders, query) {
			if !yield(o) {
				return
			}
		}
	}
}
