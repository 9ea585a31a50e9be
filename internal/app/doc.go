// Package app is parcel's composition root.
//
// Run loads the config and display preferences, points the standard logger
// at the configured file (or discards it, since the TUI owns the terminal),
// fetches the initial orders, builds the state store and hands everything to
// the bubbletea program in package ui.
//
// Orders come from the built-in seed unless orders_file names a TOML
// fixture. LoadOrders retries a failing source a few times with exponential
// backoff; every attempt runs under request_timeout.
package app
