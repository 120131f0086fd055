// Package character defines the player record the engine reads and writes:
// base attributes, job and skill experience, and the authoritative HP/SP pool.
package character

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// ErrNotFound is returned by stores when no character has the requested ID.
var ErrNotFound = errors.New("character not found")

// ErrNameTaken is returned by stores when another character already uses the name.
var ErrNameTaken = errors.New("character name already taken")

// Pool is the authoritative HP/SP state as of SyncedAt. Maxima are derived
// from stats on every read and are not stored. The carries hold regen that
// has not yet reached a whole point.
type Pool struct {
	CurrentHP int       `json:"current_hp"`
	CurrentSP int       `json:"current_sp"`
	HPCarry   float64   `json:"hp_carry"`
	SPCarry   float64   `json:"sp_carry"`
	SyncedAt  time.Time `json:"synced_at"`
	InBattle  bool      `json:"in_battle"`
}

// Character represents a player character's persistent engine state.
//
// ID is set by the persistence layer; zero indicates an unsaved character.
type Character struct {
	ID    int64
	Name  string
	Stats stats.CharacterStats
	JobXP int64
	// SkillXP holds cumulative training XP keyed by skill id.
	SkillXP map[string]int64
	Pool    Pool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds a character with full pools as of now.
//
// Precondition: name non-empty; every base attribute >= 0.
// Postcondition: Pool.CurrentHP/SP equal the unequipped maxima.
func New(name string, base stats.CharacterStats, now time.Time) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	for _, a := range stats.Attributes {
		if v := base.Get(a); v < 0 {
			return nil, fmt.Errorf("attribute %s must be >= 0, got %d", a, v)
		}
	}
	agg := stats.Aggregate(base, nil)
	return &Character{
		Name:    name,
		Stats:   base,
		SkillXP: map[string]int64{},
		Pool: Pool{
			CurrentHP: agg.MaxHP,
			CurrentSP: agg.MaxSP,
			SyncedAt:  now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SkillXPFor returns the cumulative XP of skillID, 0 when untrained.
func (c *Character) SkillXPFor(skillID string) int64 {
	return c.SkillXP[skillID]
}

// Clone returns a deep copy safe to mutate independently.
func (c *Character) Clone() *Character {
	cp := *c
	cp.SkillXP = maps.Clone(c.SkillXP)
	if cp.SkillXP == nil {
		cp.SkillXP = map[string]int64{}
	}
	return &cp
}
