// ABOUTME: Tests for the session snapshot store
// ABOUTME: Verifies round-trip, corruption handling, and idempotent clearing

package session

import (
	"os"
	"path/filepath"
	"testing"

	"alumniconnect/internal/models"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	saved := Snapshot{
		Token: "tok-123",
		User: &models.Account{
			ID:    "7",
			Email: "rahul.verma@alumni.com",
			Role:  models.RoleAlumni,
		},
	}
	store.Save(saved)

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if loaded.Token != saved.Token {
		t.Errorf("token mismatch: %s", loaded.Token)
	}
	if loaded.User.Email != saved.User.Email || loaded.User.Role != models.RoleAlumni {
		t.Errorf("user mismatch: %+v", loaded.User)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if snap := store.Load(); snap != nil {
		t.Errorf("expected nil for missing file, got %+v", snap)
	}
}

func TestStore_CorruptFileDiscarded(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path := filepath.Join(dir, "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if snap := store.Load(); snap != nil {
		t.Errorf("expected nil for corrupt file, got %+v", snap)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected corrupt file to be removed")
	}
}

func TestStore_IncompleteSnapshotIgnored(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Save(Snapshot{Token: "tok-without-user"})

	if snap := store.Load(); snap != nil {
		t.Errorf("expected nil for snapshot without user, got %+v", snap)
	}
}

func TestStore_ClearIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Save(Snapshot{Token: "tok", User: &models.Account{ID: "1", Role: models.RoleStudent}})

	store.Clear()
	if snap := store.Load(); snap != nil {
		t.Error("expected nil after clear")
	}
	// Clearing again must not panic or error.
	store.Clear()
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.Save(Snapshot{Token: "secret", User: &models.Account{ID: "1", Role: models.RoleAlumni}})

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}
