package condition

import (
	"context"
	"slices"
	"sync"
)

// Store persists the status entries carried by each player between turns.
type Store interface {
	// Statuses returns the player's entries in application order; none is
	// an empty slice, not an error.
	Statuses(ctx context.Context, playerID int64) ([]Entry, error)
	// SaveStatuses replaces every entry of the player with entries.
	SaveStatuses(ctx context.Context, playerID int64, entries []Entry) error
}

// MemoryStore is a process-local Store. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[int64][]Entry
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int64][]Entry)}
}

// Statuses implements Store.
func (s *MemoryStore) Statuses(_ context.Context, playerID int64) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.entries[playerID]), nil
}

// SaveStatuses implements Store.
func (s *MemoryStore) SaveStatuses(_ context.Context, playerID int64, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(entries) == 0 {
		delete(s.entries, playerID)
		return nil
	}
	s.entries[playerID] = cloneEntries(entries)
	return nil
}

func cloneEntries(in []Entry) []Entry {
	out := slices.Clone(in)
	for i, e := range out {
		if e.Stat != nil {
			stat := *e.Stat
			out[i].Stat = &stat
		}
	}
	if out == nil {
		out = []Entry{}
	}
	return out
}
