package orders

import (
	"iter"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Filter selects the subset of orders shown in one tab of the orders screen.
type Filter int

const (
	FilterAll Filter = iota
	FilterInTransit
	FilterWarehouse
	FilterReturned
)

// Filters lists the filters in tab order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterInTransit, FilterWarehouse, FilterReturned}
}

// Label returns the tab label.
func (f Filter) Label() string {
	switch f {
	case FilterInTransit:
		return "Enviado"
	case FilterWarehouse:
		return "En bodega"
	case FilterReturned:
		return "Devoluciones"
	default:
		return "Todos"
	}
}

// Next cycles to the following tab.
func (f Filter) Next() Filter {
	if f >= FilterReturned || f < FilterAll {
		return FilterAll
	}
	return f + 1
}

// Prev cycles to the previous tab.
func (f Filter) Prev() Filter {
	if f <= FilterAll || f > FilterReturned {
		return FilterReturned
	}
	return f - 1
}

// Matches reports whether o belongs in the tab.
func (f Filter) Matches(o Order) bool {
	switch f {
	case FilterInTransit:
		return o.Status == StatusInTransit
	case FilterWarehouse:
		return o.Status == StatusWarehouse
	case FilterReturned:
		return o.Status == StatusReturned
	default:
		return true
	}
}

// Filtered yields the orders of list accepted by f. The sequence reads list
// each time it is ranged over.
func Filtered(list []Order, f Filter) iter.Seq[Order] {
	return func(yield func(Order) bool) {
		for _, o := range list {
			if f.Matches(o) && !yield(o) {
				return
			}
		}
	}
}

// Searched yields the orders of list that match query. An empty query
// yields everything.
func Searched(list []Order, query string) iter.Seq[Order] {
	q := normalize(query)
	return func(yield func(Order) bool) {
		for _, o := range list {
			if (q == "" || matchesQuery(o, q)) && !yield(o) {
				return
			}
		}
	}
}

// MatchesQuery reports whether o matches a free text query.
func MatchesQuery(o Order, query string) bool {
	q := normalize(query)
	return q == "" || matchesQuery(o, q)
}

func matchesQuery(o Order, q string) bool {
	fields := []string{o.ID, o.Name, o.Address, o.Recipient}
	for _, field := range fields {
		if strings.Contains(normalize(field), q) {
			return true
		}
	}
	// Fall back to per-word comparison so small typos still find the order.
	tolerance := typoTolerance(q)
	if tolerance == 0 {
		return false
	}
	for _, word := range words(o.Name + " " + o.Address) {
		if levenshtein.ComputeDistance(word, q) <= tolerance {
			return true
		}
	}
	return false
}

func typoTolerance(q string) int {
	switch n := len([]rune(q)); {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

func words(s string) []string {
	return strings.FieldsFunc(normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
