package action

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrExists is returned by Store.Create when the player already has an
// active action.
var ErrExists = errors.New("action: player already has an active action")

// ErrStale is returned by Store.Advance and Store.Delete when the player's
// current attempt is not the one the caller expected.
var ErrStale = errors.New("action: attempt is no longer current")

// Store persists ActiveActions with conditional writes.
//
// Implementations must make Create, Advance and Delete atomic with respect to
// each other for the same player.
type Store interface {
	// Get returns the player's ActiveAction, or nil when IDLE.
	Get(ctx context.Context, playerID int64) (*ActiveAction, error)
	// Create inserts a, failing with ErrExists if the player has one.
	Create(ctx context.Context, a ActiveAction) error
	// Advance replaces the attempt identified by prev with next.
	Advance(ctx context.Context, prev uuid.UUID, next ActiveAction) error
	// Delete removes the attempt identified by attemptID.
	Delete(ctx context.Context, playerID int64, attemptID uuid.UUID) error
	// ListDue returns up to limit actions whose window has elapsed at now,
	// earliest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]ActiveAction, error)
}

// MemoryStore is a process-local Store. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	actions map[int64]ActiveAction
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{actions: make(map[int64]ActiveAction)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, playerID int64) (*ActiveAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actions[playerID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context, a ActiveAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.actions[a.PlayerID]; ok {
		return ErrExists
	}
	s.actions[a.PlayerID] = a
	return nil
}

// Advance implements Store.
func (s *MemoryStore) Advance(_ context.Context, prev uuid.UUID, next ActiveAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.actions[next.PlayerID]
	if !ok || cur.AttemptID != prev {
		return ErrStale
	}
	s.actions[next.PlayerID] = next
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, playerID int64, attemptID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.actions[playerID]
	if !ok || cur.AttemptID != attemptID {
		return ErrStale
	}
	delete(s.actions, playerID)
	return nil
}

// ListDue implements Store.
func (s *MemoryStore) ListDue(_ context.Context, now time.Time, limit int) ([]ActiveAction, error) {
	s.mu.Lock()
	var due []ActiveAction
	for _, a := range s.actions {
		if a.Due(now) {
			due = append(due, a)
		}
	}
	s.mu.Unlock()
	sort.Slice(due, func(i, j int) bool {
		if due[i].ExpectedCompletionAt.Equal(due[j].ExpectedCompletionAt) {
			return due[i].PlayerID < due[j].PlayerID
		}
		return due[i].ExpectedCompletionAt.Before(due[j].ExpectedCompletionAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
