package catalog

import "sync/atomic"

// Store holds the current catalog snapshot behind an atomic pointer.
// Readers take a consistent snapshot with Current; a live reload builds a
// complete replacement and publishes it with Swap. There is no in-place
// mutation, so concurrent requests need no locking.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given snapshot. A nil snapshot is
// allowed; Current then returns an empty snapshot so callers see
// MissingDatasetError semantics rather than a nil dereference.
func NewStore(s *Snapshot) *Store {
	st := &Store{}
	if s == nil {
		s = NewSnapshot(nil, nil, nil)
	}
	st.current.Store(s)
	return st
}

// Current returns the snapshot in effect right now.
func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

// Swap publishes a new snapshot and returns the one it replaced.
func (st *Store) Swap(s *Snapshot) *Snapshot {
	if s == nil {
		return st.current.Load()
	}
	return st.current.Swap(s)
}
