// Package orders holds the order collection and the order status state machine.
//
// # Status lifecycle
//
// Orders move along a fixed table of edges:
//
//	en_camino ─┐
//	           ├─> recibido ─> devuelto
//	en_bodega ─┘
//
// recibido accepts no further delivery confirmation and devuelto is terminal.
// Every other edge is rejected with *InvalidTransitionError.
//
// # Mutation
//
// Store.ApplyTransition is the only way to change a stored order. A
// Transition is a pure function from the current record to the next one;
// ConfirmDelivery and MarkReturned are the two shapes in use. The store checks
// the result against the transition table, refuses changes to immutable
// fields, replaces the record in place and returns a StatusChanged event.
//
// # Views
//
// FilterByStatus and Search return iter.Seq views. They are lazy and can be
// ranged over any number of times; each pass reads the current collection.
//
// # Sources
//
// Source abstracts where the initial collection comes from. SeedSource serves
// the built-in demo data and FileSource reads a TOML fixture.
package orders
