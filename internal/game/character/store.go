package character

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// JobTrack names the job progression; any other track is a skill id.
const JobTrack = "job"

// MemoryStore is an in-process character store for standalone mode and tests.
// It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	chars  map[int64]*Character
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{chars: make(map[int64]*Character)}
}

// Create stores a copy of c under a fresh ID.
//
// Postcondition: The returned character has a non-zero ID, or ErrNameTaken.
func (s *MemoryStore) Create(_ context.Context, c *Character) (*Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.chars {
		if existing.Name == c.Name {
			return nil, fmt.Errorf("character %q: %w", c.Name, ErrNameTaken)
		}
	}
	s.nextID++
	cp := c.Clone()
	cp.ID = s.nextID
	s.chars[cp.ID] = cp
	return cp.Clone(), nil
}

// Get returns a copy of the character with id, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id int64) (*Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chars[id]
	if !ok {
		return nil, fmt.Errorf("character %d: %w", id, ErrNotFound)
	}
	return c.Clone(), nil
}

// AddXP adds delta to track and returns the new total.
//
// Precondition: delta >= 0.
func (s *MemoryStore) AddXP(_ context.Context, id int64, track string, delta int64) (int64, error) {
	if delta < 0 {
		return 0, fmt.Errorf("xp delta must be >= 0, got %d", delta)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chars[id]
	if !ok {
		return 0, fmt.Errorf("character %d: %w", id, ErrNotFound)
	}
	c.UpdatedAt = time.Now()
	if track == JobTrack {
		c.JobXP += delta
		return c.JobXP, nil
	}
	c.SkillXP[track] += delta
	return c.SkillXP[track], nil
}

// SavePool overwrites the authoritative pool of id.
func (s *MemoryStore) SavePool(_ context.Context, id int64, p Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chars[id]
	if !ok {
		return fmt.Errorf("character %d: %w", id, ErrNotFound)
	}
	c.Pool = p
	c.UpdatedAt = time.Now()
	return nil
}

// SaveStats overwrites the base attributes of id.
func (s *MemoryStore) SaveStats(_ context.Context, id int64, base stats.CharacterStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chars[id]
	if !ok {
		return fmt.Errorf("character %d: %w", id, ErrNotFound)
	}
	c.Stats = base
	c.UpdatedAt = time.Now()
	return nil
}
