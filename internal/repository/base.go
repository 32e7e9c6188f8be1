// Package repository provides data access over the snapshot store.
package repository

import (
	"context"
	"sync"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Snapshots serializes all access to the underlying store. Every operation
// is a read-modify-write over the full snapshot, so a single mutex gives
// single-writer discipline and removes in-process lost updates. Cross-process
// writers are out of scope.
type Snapshots struct {
	mu    sync.Mutex
	store store.Store
}

// NewSnapshots wraps a store with serialized access.
func NewSnapshots(s store.Store) *Snapshots {
	return &Snapshots{store: s}
}

// view runs fn against the current snapshot without saving.
func (s *Snapshots) view(ctx context.Context, fn func(*store.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return models.NewInternalError(err)
	}
	return fn(snap)
}

// update runs fn against the current snapshot and, when fn succeeds,
// persists the whole updated snapshot.
func (s *Snapshots) update(ctx context.Context, fn func(*store.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := fn(snap); err != nil {
		return err
	}
	if err := s.store.Save(ctx, snap); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
