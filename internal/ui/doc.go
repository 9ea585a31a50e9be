// Package ui is parcel's terminal interface, built on Bubble Tea.
//
// The Model renders state.Snapshot values and turns key presses into
// state.Intent values sent to state.Store.Dispatch. It owns only
// presentation state: cursors, the active tab, the search box, the login
// form, the route currently drawn and the display preferences.
//
// # Screens
//
//   - login.go: user and masked password fields, async sign-in
//   - home.go: greeting and the three most recent orders
//   - orders.go: status tabs, incremental search, per-order actions
//   - detail.go: order fields, delivery timeline, available transitions
//   - mapview.go: route grid resolved in the background
//   - notifications.go, account.go, settings.go
//   - drawer.go, toast.go, help.go: overlays
//
// # Async work
//
// Sign-in and route lookups run as tea.Cmd functions under the configured
// request timeout and report back as messages. Route results carry a
// sequence number so a late answer for a previous order is dropped. When a
// toast TTL is configured, every new toast schedules a DismissToast for its
// own sequence number, so a newer toast is never cleared early.
package ui
