package history

// Snapshot is a consistent, immutable view of a container's observable
// state. Watchers receive one after every state-changing call.
type Snapshot[T comparable] struct {
	// Entries is a copy of the log, oldest first.
	Entries []T

	// Cursor is the index of the current value within Entries.
	Cursor int

	// Current is Entries[Cursor].
	Current T

	// CanBack reports whether Back would move the cursor.
	CanBack bool

	// CanForward reports whether Forward would move the cursor.
	CanForward bool
}

// Len returns the number of entries in the snapshot.
func (s Snapshot[T]) Len() int {
	return len(s.Entries)
}
