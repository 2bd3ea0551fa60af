// Package cache holds the last known backend snapshot per entity type.
// Reads never block: consumers always get the last value plus staleness and
// loading flags, and an absent entry means "unknown", not "zero records".
package cache

import (
	"sync"
)

// EntityType addresses one cache family. Invalidation is per family, never
// per record, so derived views that read across the full collection can
// never observe a partially refreshed snapshot.
type EntityType string

const (
	Appointments      EntityType = "appointments"
	Clients           EntityType = "clients"
	Products          EntityType = "products"
	Services          EntityType = "services"
	Transactions      EntityType = "transactions"
	MonthlyAggregates EntityType = "monthly_aggregates"
	Portfolio         EntityType = "portfolio"
)

// Key addresses one entry. Params distinguishes parameterized reads of the
// same family (aggregates per year, portfolio per tag); list-all reads use
// empty Params.
type Key struct {
	Type   EntityType
	Params string
}

// ListKey is the key for the unparameterized list-all read of a family.
func ListKey(t EntityType) Key {
	return Key{Type: t}
}

// Snapshot is what consumers see: the last known value tagged with a
// monotonically advancing generation.
type Snapshot struct {
	Value      interface{}
	Generation uint64
	IsStale    bool
	IsLoading  bool
}

type entry struct {
	value      interface{}
	generation uint64
	hasValue   bool
	stale      bool
	loading    bool
}

// Store is the in-memory entity cache. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[Key]*entry)}
}

// Get returns the current snapshot for key. ok is false until the first Set
// completes; IsLoading may be true either way.
func (s *Store) Get(key Key) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.entries[key]
	if !found {
		return Snapshot{}, false
	}
	snap := Snapshot{
		Value:      e.value,
		Generation: e.generation,
		IsStale:    e.stale,
		IsLoading:  e.loading,
	}
	return snap, e.hasValue
}

// Set replaces the cached value and advances its generation. Clears the
// stale and loading flags: the entry now reflects the server.
func (s *Store) Set(key Key, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.ensure(key)
	e.value = value
	e.hasValue = true
	e.generation++
	e.stale = false
	e.loading = false
}

// Invalidate marks every entry of the given type stale but keeps the last
// known values (stale-while-revalidate). Invalidating an already-stale
// entry is a no-op: the generation does not move and no fetch is triggered
// until the entry is actually read.
func (s *Store) Invalidate(t EntityType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if key.Type == t && e.hasValue {
			e.stale = true
		}
	}
}

// MarkLoading sets the fetch-in-flight flag. Only the query coordinator
// touches this.
func (s *Store) MarkLoading(key Key, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.ensure(key)
	e.loading = loading
}

// Generation returns the current generation for key (0 before first Set).
func (s *Store) Generation(key Key) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, found := s.entries[key]; found {
		return e.generation
	}
	return 0
}

func (s *Store) ensure(key Key) *entry {
	e, found := s.entries[key]
	if !found {
		e = &entry{}
		s.entries[key] = e
	}
	return e
}
