// Package importer seeds characters, their starting inventories and their
// worn equipment from a YAML roster.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// Roster is the YAML document listing the characters to seed.
type Roster struct {
	Characters []Entry `yaml:"characters"`
}

// Entry describes one seeded character.
type Entry struct {
	Name    string               `yaml:"name"`
	Stats   stats.CharacterStats `yaml:"stats"`
	JobXP   int64                `yaml:"job_xp"`
	SkillXP map[string]int64     `yaml:"skill_xp"`
	Items   []inventory.Stack    `yaml:"items"`
	// Equipment lists item ids worn at creation. Each must be equipment and
	// occupy a distinct slot.
	Equipment []string `yaml:"equipment"`
}

// LoadRoster parses the roster at path, rejecting unknown fields.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer: reading roster %q: %w", path, err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a roster document.
//
// Postcondition: every entry has a non-empty, unique name.
func ParseRoster(data []byte) (*Roster, error) {
	var r Roster
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("importer: parsing roster: %w", err)
	}
	seen := make(map[string]bool, len(r.Characters))
	for i, e := range r.Characters {
		if e.Name == "" {
			return nil, fmt.Errorf("importer: character %d has no name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("importer: duplicate character %q", e.Name)
		}
		seen[e.Name] = true
	}
	return &r, nil
}

// CharacterCreator persists new characters.
type CharacterCreator interface {
	Create(ctx context.Context, c *character.Character) (*character.Character, error)
}

// ItemGranter adds items to a player's inventory.
type ItemGranter interface {
	Grant(ctx context.Context, playerID int64, itemID string, qty int) error
}

// EquipmentSaver stores a player's equipped slots.
type EquipmentSaver interface {
	SaveEquipment(ctx context.Context, playerID int64, eq *inventory.Equipment) error
}

// Importer writes roster entries through the engine's stores.
type Importer struct {
	chars     CharacterCreator
	items     ItemGranter
	equipment EquipmentSaver
	registry  *inventory.Registry
	now       func() time.Time
	logger    *zap.Logger
}

// New constructs an Importer.
//
// Precondition: every argument is non-nil.
func New(chars CharacterCreator, items ItemGranter, equipment EquipmentSaver, registry *inventory.Registry, logger *zap.Logger) *Importer {
	return &Importer{
		chars:     chars,
		items:     items,
		equipment: equipment,
		registry:  registry,
		now:       time.Now,
		logger:    logger,
	}
}

// Report summarises one import run.
type Report struct {
	// Created maps each new character name to its assigned id.
	Created map[string]int64
	// Skipped lists names that already existed.
	Skipped []string
}

// Run creates every roster character that does not exist yet. Existing names
// are skipped, so re-running a roster is safe.
//
// Postcondition: each created character starts with full pools under its
// equipped maxima.
func (imp *Importer) Run(ctx context.Context, r *Roster) (Report, error) {
	start := time.Now()
	rep := Report{Created: make(map[string]int64)}
	for _, e := range r.Characters {
		id, err := imp.importEntry(ctx, e)
		if errors.Is(err, character.ErrNameTaken) {
			rep.Skipped = append(rep.Skipped, e.Name)
			continue
		}
		if err != nil {
			return rep, fmt.Errorf("importer: %q: %w", e.Name, err)
		}
		rep.Created[e.Name] = id
	}
	imp.logger.Info("roster imported",
		zap.Int("created", len(rep.Created)),
		zap.Int("skipped", len(rep.Skipped)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rep, nil
}

func (imp *Importer) importEntry(ctx context.Context, e Entry) (int64, error) {
	eq := inventory.NewEquipment()
	for _, itemID := range e.Equipment {
		def, ok := imp.registry.Item(itemID)
		if !ok {
			return 0, fmt.Errorf("unknown item %q", itemID)
		}
		prev, err := eq.Equip(def)
		if err != nil {
			return 0, err
		}
		if prev != "" {
			return 0, fmt.Errorf("items %q and %q share slot %s", prev, itemID, def.Slot)
		}
	}
	for _, s := range e.Items {
		if _, ok := imp.registry.Item(s.ItemID); !ok {
			return 0, fmt.Errorf("unknown item %q", s.ItemID)
		}
	}

	c, err := character.New(e.Name, e.Stats, imp.now())
	if err != nil {
		return 0, err
	}
	agg := stats.Aggregate(e.Stats, eq.Bonuses(imp.registry))
	c.Pool.CurrentHP = max(agg.MaxHP, 0)
	c.Pool.CurrentSP = max(agg.MaxSP, 0)
	c.JobXP = e.JobXP
	for track, xp := range e.SkillXP {
		c.SkillXP[track] = xp
	}

	saved, err := imp.chars.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	for _, s := range e.Items {
		if err := imp.items.Grant(ctx, saved.ID, s.ItemID, s.Quantity); err != nil {
			return 0, fmt.Errorf("granting %s: %w", s.ItemID, err)
		}
	}
	if len(e.Equipment) > 0 {
		if err := imp.equipment.SaveEquipment(ctx, saved.ID, eq); err != nil {
			return 0, fmt.Errorf("saving equipment: %w", err)
		}
	}
	imp.logger.Debug("character imported", zap.String("name", e.Name), zap.Int64("id", saved.ID))
	return saved.ID, nil
}
