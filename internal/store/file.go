package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkwell/internal/observability"
)

// FileStore persists the snapshot as a single JSON file, read and rewritten
// wholesale on every operation. A missing or corrupt file is replaced with
// a fresh empty snapshot instead of failing.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the snapshot file.
func (s *FileStore) Load(_ context.Context) (*Snapshot, error) {
	start := time.Now()
	defer observability.ObserveSince(observability.SnapshotLoadDuration, start)

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	snap := NewSnapshot()
	if err := json.Unmarshal(raw, snap); err != nil {
		// Corrupt state self-heals to an empty snapshot.
		observability.SnapshotRecoveries.Inc()
		return NewSnapshot(), nil
	}
	if snap.Users == nil {
		snap.Users = NewSnapshot().Users
	}
	if snap.Posts == nil {
		snap.Posts = NewSnapshot().Posts
	}
	return snap, nil
}

// Save rewrites the whole snapshot file. The write goes through a temp file
// and rename so a crash mid-write cannot leave a truncated snapshot.
func (s *FileStore) Save(_ context.Context, snap *Snapshot) error {
	start := time.Now()
	defer observability.ObserveSince(observability.SnapshotSaveDuration, start)

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}
	return nil
}
