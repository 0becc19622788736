// Package toast implements the notification store behind melba's
// toast overlay.
//
// A Store holds an ordered collection of immutable records plus a
// parallel map of per-record interaction state (the live drag offset
// and the exiting flag), and a single expanded-mode flag. All three
// live in reactive signals, so a host subscribes once via Watch and
// re-renders whenever anything changes.
//
// Records are appended with Push (or the Success/Error/Warning/Info
// helpers, which build a standard payload) and leave the collection
// through Dismiss. Dismissing an unknown id is a no-op, never an
// error. When the last record is dismissed the store forces expanded
// mode back to compact.
//
// The store never computes layout; feed Snapshot into pkg/stack for
// per-item placement.
//
//	store := toast.NewStore()
//	cancel := store.Watch(rerender)
//	defer cancel()
//
//	store.Success("Changes saved")
//	items, expanded := store.Snapshot()
package toast
