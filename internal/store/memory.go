package store

import "context"

// MemoryStore keeps the snapshot in process memory. It deep-copies on both
// load and save so callers observe the same wholesale-replacement semantics
// as the file-backed store. It is the store used in tests.
type MemoryStore struct {
	snap *Snapshot
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: NewSnapshot()}
}

// Load returns a deep copy of the current snapshot.
func (s *MemoryStore) Load(_ context.Context) (*Snapshot, error) {
	return clone(s.snap)
}

// Save replaces the held snapshot with a deep copy of snap.
func (s *MemoryStore) Save(_ context.Context, snap *Snapshot) error {
	copied, err := clone(snap)
	if err != nil {
		return err
	}
	s.snap = copied
	return nil
}
