// ABOUTME: Durable persistence for the session snapshot across CLI invocations
// ABOUTME: Stores token and user JSON in the XDG config directory

package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"alumniconnect/internal/models"
)

// Snapshot is the serializable projection of a session.
type Snapshot struct {
	Token string          `json:"token"`
	User  *models.Account `json:"user"`
}

// Store persists the session snapshot to a single JSON file.
// The in-memory session stays authoritative: persistence failures are
// logged and swallowed, never propagated.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given state directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// file returns the path to the session JSON.
func (s *Store) file() string {
	return filepath.Join(s.dir, "session.json")
}

// Save overwrites the persisted snapshot. Never returns an error.
func (s *Store) Save(snap Snapshot) {
	if s.dir == "" {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		slog.Warn("session not persisted", "error", err)
		return
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		slog.Warn("session not persisted", "error", err)
		return
	}
	if err := os.WriteFile(s.file(), data, 0o600); err != nil {
		slog.Warn("session not persisted", "error", err)
	}
}

// Load returns the last persisted snapshot, or nil if absent or corrupt.
// Corrupt data is discarded.
func (s *Store) Load() *Snapshot {
	data, err := os.ReadFile(s.file())
	if err != nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("discarding corrupt session file", "path", s.file())
		_ = os.Remove(s.file())
		return nil
	}
	if snap.Token == "" || snap.User == nil {
		return nil
	}
	return &snap
}

// Clear removes the persisted snapshot. Idempotent.
func (s *Store) Clear() {
	_ = os.Remove(s.file())
}
