// Package state provides thread-safe state management for the showroom.
//
// # Overview
//
// The Store holds the most recent catalog shared between the catalog watcher
// and the UI. The watcher is the single writer; the UI polls snapshots on its
// own schedule and rebuilds its carousels only when Version changes.
//
//	Producer (watcher):           Consumer (UI):
//	┌────────────────┐            ┌────────────────┐
//	│ catalog.Load() │            │ store.Version()│
//	│      ↓         │            │      ↓         │
//	│ store.Update() │───────────→│store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓         │
//	│ wait for write │            │ reconcile      │
//	└────────────────┘            └────────────────┘
//
// # Update Semantics
//
//	// Success: replace the catalog
//	store.Update(cat, nil)
//	→ snapshot.Catalog = clone(cat)
//	→ snapshot.Version++
//	→ snapshot.LastError = nil
//	→ snapshot.LastLoaded = now
//
//	// Failure: keep the previous catalog, record the error
//	store.Update(nil, err)
//	→ snapshot.Catalog = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// A catalog that fails to parse after an edit therefore never blanks the
// screen; the header shows the error and IsStale reports true until the next
// successful load.
//
// # Defensive Copying
//
// Update clones its input and Snapshot clones its output, so neither side
// can observe the other's mutations. Errors are re-wrapped so callers get a
// distinct value that still matches errors.Is.
//
// The Store is ready to use as a zero value.
package state
