// ABOUTME: Local fallback cache keeping dashboards usable when the backend is down
// ABOUTME: Read-through/write-through per-entity collections persisted as JSON files

package fallback

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Provenance marks where a returned collection came from.
type Provenance string

const (
	// FromServer: the read hit the backend and the cache was overwritten.
	FromServer Provenance = "server"
	// FromCache: the backend was unreachable, the last persisted copy served.
	FromCache Provenance = "cache"
	// Default: no cached copy existed, the fixed seed was served and persisted.
	Default Provenance = "default"
)

// Live reports whether the data reflects current server state.
func (p Provenance) Live() bool { return p == FromServer }

// Cache is the shared on-disk store for all entity collections.
// Last-writer-wins, no cross-process locking; that is an accepted
// limitation of the local-first design.
type Cache struct {
	dir string
	mu  sync.Mutex
}

// New creates a cache rooted at the given state directory.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// path returns the file backing one entity tag.
func (c *Cache) path(entity string) string {
	return filepath.Join(c.dir, entity+".json")
}

// load reads the raw persisted bytes for an entity, nil if absent.
func (c *Cache) load(entity string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := os.ReadFile(c.path(entity))
	if err != nil {
		return nil
	}
	return data
}

// store persists raw bytes for an entity. Failures are logged and
// swallowed; the in-memory copy remains authoritative for this run.
func (c *Cache) store(entity string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dir == "" {
		return
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		slog.Warn("cache not persisted", "entity", entity, "error", err)
		return
	}
	if err := os.WriteFile(c.path(entity), data, 0o644); err != nil {
		slog.Warn("cache not persisted", "entity", entity, "error", err)
	}
}

// remove drops the persisted copy for an entity.
func (c *Cache) remove(entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = os.Remove(c.path(entity))
}

// Collection is one entity type's cached, ordered sequence.
// It remembers the most recently returned slice so that optimistic writes
// apply to what the user actually saw, never a stale copy.
type Collection[T any] struct {
	cache  *Cache
	entity string
	seed   []T

	mu   sync.Mutex
	last []T
}

// NewCollection binds an entity tag to the cache with its default seed.
func NewCollection[T any](c *Cache, entity string, seed []T) *Collection[T] {
	return &Collection[T]{cache: c, entity: entity, seed: seed}
}

// Read attempts the server fetch. Server success overwrites the persisted
// copy (server wins); failure serves the last persisted copy; with no copy
// at all the seed is persisted and served.
func (col *Collection[T]) Read(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, Provenance) {
	items, err := fetch(ctx)
	if err == nil {
		col.persist(items)
		return col.remember(items), FromServer
	}
	slog.Debug("read degraded to cache", "entity", col.entity, "error", err)
	return col.ReadCached()
}

// ReadCached serves the persisted copy without touching the server,
// seeding it first if none exists.
func (col *Collection[T]) ReadCached() ([]T, Provenance) {
	if data := col.cache.load(col.entity); data != nil {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return col.remember(items), FromCache
		}
		// Corrupt cache file: discard and fall through to the seed.
		col.cache.remove(col.entity)
	}
	seeded := make([]T, len(col.seed))
	copy(seeded, col.seed)
	col.persist(seeded)
	return col.remember(seeded), Default
}

// Write attempts the server push. Success triggers a fresh Read to
// resynchronize. Failure applies the mutation to the most recently
// returned collection and persists it, a local-only optimistic write that
// the next successful server read silently overwrites. The push error is
// returned alongside the applied data so user-initiated writes can surface
// it.
func (col *Collection[T]) Write(
	ctx context.Context,
	push func(context.Context) error,
	fetch func(context.Context) ([]T, error),
	apply func([]T) []T,
) ([]T, Provenance, error) {
	if err := push(ctx); err != nil {
		base, _ := col.lastOrCached()
		updated := apply(base)
		col.persist(updated)
		return col.remember(updated), FromCache, err
	}
	items, prov := col.Read(ctx, fetch)
	return items, prov, nil
}

// lastOrCached returns the most recently returned collection, falling back
// to the persisted copy (or seed) when nothing has been read yet.
func (col *Collection[T]) lastOrCached() ([]T, Provenance) {
	col.mu.Lock()
	last := col.last
	col.mu.Unlock()
	if last != nil {
		return last, FromCache
	}
	return col.ReadCached()
}

func (col *Collection[T]) remember(items []T) []T {
	col.mu.Lock()
	col.last = items
	col.mu.Unlock()
	return items
}

func (col *Collection[T]) persist(items []T) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		slog.Warn("cache not persisted", "entity", col.entity, "error", err)
		return
	}
	col.cache.store(col.entity, data)
}

// Object is a single cached value (settings) with the same read-through/
// write-through semantics as Collection.
type Object[T any] struct {
	cache  *Cache
	entity string
	seed   T

	mu   sync.Mutex
	last *T
}

// NewObject binds a single-value entity tag to the cache with its default.
func NewObject[T any](c *Cache, entity string, seed T) *Object[T] {
	return &Object[T]{cache: c, entity: entity, seed: seed}
}

// Read attempts the server fetch, mirroring Collection.Read.
func (o *Object[T]) Read(ctx context.Context, fetch func(context.Context) (T, error)) (T, Provenance) {
	val, err := fetch(ctx)
	if err == nil {
		o.persist(val)
		return o.remember(val), FromServer
	}
	slog.Debug("read degraded to cache", "entity", o.entity, "error", err)
	return o.ReadCached()
}

// ReadCached serves the persisted value, seeding the default if absent.
func (o *Object[T]) ReadCached() (T, Provenance) {
	if data := o.cache.load(o.entity); data != nil {
		var val T
		if err := json.Unmarshal(data, &val); err == nil {
			return o.remember(val), FromCache
		}
		o.cache.remove(o.entity)
	}
	o.persist(o.seed)
	return o.remember(o.seed), Default
}

// Write attempts the server push; on failure the value is persisted
// locally and the push error returned for the caller to surface or swallow.
func (o *Object[T]) Write(ctx context.Context, val T, push func(context.Context) error) (T, Provenance, error) {
	if err := push(ctx); err != nil {
		o.persist(val)
		return o.remember(val), FromCache, err
	}
	o.persist(val)
	return o.remember(val), FromServer, nil
}

func (o *Object[T]) remember(val T) T {
	o.mu.Lock()
	o.last = &val
	o.mu.Unlock()
	return val
}

func (o *Object[T]) persist(val T) {
	data, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		slog.Warn("cache not persisted", "entity", o.entity, "error", err)
		return
	}
	o.cache.store(o.entity, data)
}
