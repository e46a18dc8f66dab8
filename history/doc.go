// Package history provides a bounded, navigable log of committed values:
// the undo/redo container used by editors, form wizards, and other
// stateful UI components.
//
// A History holds an ordered log of values and a cursor into it. The
// value at the cursor is the current value. Key concepts:
//
// # Committing
//
// Set appends a new value; Update transforms the current one. A commit
// made while the cursor sits before the end of the log discards the
// forward branch first — after a new edit there is nothing to redo:
//
//	h, _ := history.New("draft", history.WithCapacity(100))
//	h.Set("draft 2")
//	h.Back()            // current: "draft"
//	h.Set("rewrite")    // "draft 2" is gone for good
//
// Committing a value equal to the one at the cursor leaves the log and
// cursor untouched.
//
// # Navigation
//
// Back, Forward, and GoTo move the cursor. Requests past either end of
// the log are silent no-ops, so UI code may disable an undo button as an
// optimization but never has to.
//
// # Capacity
//
// The log never grows beyond its capacity (default 10, fixed at
// construction). When a commit would exceed it, the oldest entries are
// evicted; the newest entries always survive.
//
// # Observation
//
// Watch registers a handler that receives a Snapshot after every call
// that actually changed state. No-op calls do not notify, so downstream
// re-renders are never redundant.
//
// The container is written for a single logical writer issuing one call
// at a time, but all methods are guarded by a mutex so incidental
// cross-goroutine use (an async completion committing a result, say)
// stays safe.
package history
