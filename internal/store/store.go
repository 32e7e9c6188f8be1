// Package store persists the application's data as one wholesale snapshot:
// a single JSON document holding every user and post. Writers replace the
// entire snapshot; there are no field-level updates at this layer.
package store

import (
	"context"
	"encoding/json"

	"inkwell/internal/models"
)

// Snapshot is the full persisted state.
type Snapshot struct {
	Users []models.User `json:"users"`
	Posts []models.Post `json:"posts"`
}

// Store loads and saves snapshots. Load always returns a usable snapshot:
// implementations self-heal from missing or corrupt state rather than
// propagating a fatal error.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// NewSnapshot returns an empty, valid snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Users: []models.User{}, Posts: []models.Post{}}
}

// clone deep-copies a snapshot via a JSON round trip so callers can never
// alias state held by the store.
func clone(snap *Snapshot) (*Snapshot, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	out := NewSnapshot()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
