// ABOUTME: Tests for the read-through/write-through fallback cache
// ABOUTME: Covers server-wins reads, degraded reads, and optimistic writes

package fallback

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var errDown = errors.New("backend down")

func fetchOK(items []item) func(context.Context) ([]item, error) {
	return func(context.Context) ([]item, error) { return items, nil }
}

func fetchFail(context.Context) ([]item, error) { return nil, errDown }

func TestCollection_ServerWins(t *testing.T) {
	cache := New(t.TempDir())
	col := NewCollection(cache, "items", []item{{ID: "seed"}})

	got, origin := col.Read(context.Background(), fetchOK([]item{{ID: "1", Name: "live"}}))
	if origin != FromServer {
		t.Errorf("origin = %s, want server", origin)
	}
	if len(got) != 1 || got[0].Name != "live" {
		t.Errorf("unexpected items: %+v", got)
	}

	// Degraded read now serves what the server last returned, not the seed.
	got, origin = col.Read(context.Background(), fetchFail)
	if origin != FromCache {
		t.Errorf("origin = %s, want cache", origin)
	}
	if len(got) != 1 || got[0].Name != "live" {
		t.Errorf("cached read must equal the last successful read, got %+v", got)
	}
}

func TestCollection_SeedWhenNothingCached(t *testing.T) {
	cache := New(t.TempDir())
	col := NewCollection(cache, "items", []item{{ID: "seed", Name: "sample"}})

	got, origin := col.Read(context.Background(), fetchFail)
	if origin != Default {
		t.Errorf("origin = %s, want default", origin)
	}
	if len(got) != 1 || got[0].ID != "seed" {
		t.Errorf("expected seed data, got %+v", got)
	}

	// The seed is persisted, so the next degraded read is a cache hit.
	_, origin = col.Read(context.Background(), fetchFail)
	if origin != FromCache {
		t.Errorf("origin = %s, want cache after seeding", origin)
	}
}

func TestCollection_CachePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	col := NewCollection[item](New(dir), "items", nil)
	col.Read(context.Background(), fetchOK([]item{{ID: "1", Name: "durable"}}))

	// A fresh process sees the same data.
	col2 := NewCollection[item](New(dir), "items", nil)
	got, origin := col2.Read(context.Background(), fetchFail)
	if origin != FromCache {
		t.Errorf("origin = %s, want cache", origin)
	}
	if len(got) != 1 || got[0].Name != "durable" {
		t.Errorf("unexpected items: %+v", got)
	}
}

func TestCollection_CorruptFileFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	cache := New(dir)
	col := NewCollection(cache, "items", []item{{ID: "seed"}})

	if err := os.WriteFile(filepath.Join(dir, "items.json"), []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, origin := col.Read(context.Background(), fetchFail)
	if origin != Default {
		t.Errorf("origin = %s, want default for corrupt cache", origin)
	}
	if len(got) != 1 || got[0].ID != "seed" {
		t.Errorf("expected seed, got %+v", got)
	}
}

func TestCollection_WritePushFailureAppliesLocally(t *testing.T) {
	cache := New(t.TempDir())
	col := NewCollection[item](cache, "items", nil)

	col.Read(context.Background(), fetchOK([]item{{ID: "1"}}))

	pushFail := func(context.Context) error { return errDown }
	got, origin, err := col.Write(context.Background(), pushFail, fetchFail, func(items []item) []item {
		return append(items, item{ID: "local-2"})
	})
	if !errors.Is(err, errDown) {
		t.Errorf("expected push error surfaced, got %v", err)
	}
	if origin != FromCache {
		t.Errorf("origin = %s, want cache", origin)
	}
	if len(got) != 2 || got[1].ID != "local-2" {
		t.Errorf("mutation not applied locally: %+v", got)
	}

	// The optimistic write is visible in the next degraded read.
	got, _ = col.Read(context.Background(), fetchFail)
	if len(got) != 2 {
		t.Errorf("optimistic write lost: %+v", got)
	}
}

func TestCollection_WritePushSuccessResyncs(t *testing.T) {
	cache := New(t.TempDir())
	col := NewCollection[item](cache, "items", nil)

	push := func(context.Context) error { return nil }
	serverAfter := fetchOK([]item{{ID: "1"}, {ID: "2", Name: "server-assigned"}})

	got, origin, err := col.Write(context.Background(), push, serverAfter, func(items []item) []item {
		t.Error("apply must not run when the push succeeds")
		return items
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if origin != FromServer {
		t.Errorf("origin = %s, want server", origin)
	}
	if len(got) != 2 || got[1].Name != "server-assigned" {
		t.Errorf("expected resynced server data, got %+v", got)
	}
}

func TestCollection_ServerReadOverwritesOptimisticWrite(t *testing.T) {
	cache := New(t.TempDir())
	col := NewCollection[item](cache, "items", nil)

	pushFail := func(context.Context) error { return errDown }
	col.Write(context.Background(), pushFail, fetchFail, func(items []item) []item {
		return append(items, item{ID: "local-only"})
	})

	got, _ := col.Read(context.Background(), fetchOK([]item{{ID: "truth"}}))
	if len(got) != 1 || got[0].ID != "truth" {
		t.Errorf("server read must overwrite local-only state, got %+v", got)
	}
}

func TestObject_WriteFailurePersistsLocally(t *testing.T) {
	type settings struct {
		Enabled bool `json:"enabled"`
	}
	dir := t.TempDir()
	obj := NewObject(New(dir), "settings", settings{})

	pushFail := func(context.Context) error { return errDown }
	got, origin, err := obj.Write(context.Background(), settings{Enabled: true}, pushFail)
	if !errors.Is(err, errDown) {
		t.Errorf("expected push error, got %v", err)
	}
	if origin != FromCache || !got.Enabled {
		t.Errorf("expected locally applied value, got %+v (%s)", got, origin)
	}

	// Survives a fresh instance.
	obj2 := NewObject(New(dir), "settings", settings{})
	cached, origin := obj2.ReadCached()
	if origin != FromCache || !cached.Enabled {
		t.Errorf("expected persisted value, got %+v (%s)", cached, origin)
	}
}

func TestProvenance_Live(t *testing.T) {
	if !FromServer.Live() {
		t.Error("server data is live")
	}
	if FromCache.Live() || Default.Live() {
		t.Error("cache and default data are not live")
	}
}
