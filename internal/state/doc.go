// Package state is the single state container behind the parcel UI.
//
// # Overview
//
// The Store owns the order store, the notification list, the session manager,
// the navigation controller and the toast. Renderers never touch those
// directly. They read a Snapshot and send Intents back:
//
//	┌──────────────┐  Snapshot()   ┌──────────────┐
//	│ state.Store  │──────────────>│  renderers   │
//	│              │<──────────────│  (ui)        │
//	└──────────────┘  Dispatch()   └──────────────┘
//
// # Dispatch
//
// Dispatch takes the write lock, routes the intent to the component that owns
// the affected state and runs it to completion. Intents are handled one at a
// time, so no transition ever observes another half applied.
//
//   - Login, SessionStarted: start a session, land on Home, greet
//   - Logout: clear the session, return to Login, say goodbye
//   - Navigate, SelectOrder, Back: navigation controller (drawer closes)
//   - ConfirmDelivery, MarkReturned: order store transitions
//   - OpenDrawer, CloseDrawer, ToggleDrawer: drawer flag
//   - ShowToast, DismissToast: toast
//
// # Failure
//
// A rejected intent changes nothing except the toast, which is replaced with
// Notice(err). The typed error is also returned so callers can branch on it
// with errors.As. Nothing in this package is fatal.
//
// # Snapshots
//
// Snapshot copies the order and notification slices and clones the last
// error, so the UI can hold on to a snapshot while later intents run.
package state
