// Package engine is the service facade over the action scheduler, progression,
// pools, equipment and skill resolution. Every exposed operation is scoped to
// one player.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/skill"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// CharacterStore reads and writes the character fields the engine owns.
type CharacterStore interface {
	Get(ctx context.Context, id int64) (*character.Character, error)
	AddXP(ctx context.Context, id int64, track string, delta int64) (int64, error)
	SavePool(ctx context.Context, id int64, p character.Pool) error
}

// EquipmentStore loads and saves a player's equipped slots.
type EquipmentStore interface {
	Equipment(ctx context.Context, playerID int64) (*inventory.Equipment, error)
	SaveEquipment(ctx context.Context, playerID int64, eq *inventory.Equipment) error
}

// Deps wires a Service.
type Deps struct {
	Characters CharacterStore
	Equipment  EquipmentStore
	Inventory  action.Inventory
	Actions    action.Store
	Statuses   condition.Store
	Catalog    *action.Catalog
	Items      *inventory.Registry
	Skills     *skill.Catalog
	Curve      progression.Curve
	Roller     *dice.Roller
	// Publisher is optional; nil drops events.
	Publisher  Publisher
	Rates      regen.Rates
	MaxCatchUp int
	// Now overrides the clock; nil uses time.Now.
	Now    func() time.Time
	Logger *zap.Logger
}

// Service implements the engine operations.
type Service struct {
	chars     CharacterStore
	equipment EquipmentStore
	inv       action.Inventory
	statuses  condition.Store
	items     *inventory.Registry
	skills    *skill.Catalog
	curve     progression.Curve
	scheduler *action.Scheduler
	roller    *dice.Roller
	publisher Publisher
	rates     regen.Rates
	poolLocks *action.KeyedMutex
	now       func() time.Time
	logger    *zap.Logger
}

// New builds a Service and its Scheduler.
//
// Precondition: every Deps field except Publisher and Now is set.
func New(d Deps) *Service {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	pub := d.Publisher
	if pub == nil {
		pub = nopPublisher{}
	}
	s := &Service{
		chars:     d.Characters,
		equipment: d.Equipment,
		inv:       d.Inventory,
		statuses:  d.Statuses,
		items:     d.Items,
		skills:    d.Skills,
		curve:     d.Curve,
		roller:    d.Roller,
		publisher: pub,
		rates:     d.Rates,
		poolLocks: action.NewKeyedMutex(),
		now:       now,
		logger:    d.Logger,
	}
	s.scheduler = action.NewScheduler(d.Actions, d.Catalog, d.Inventory,
		&tracker{chars: d.Characters, curve: d.Curve}, d.Roller,
		action.Config{MaxCatchUp: d.MaxCatchUp, Now: now}, d.Logger.Named("action"))
	s.scheduler.SetObserver(s)
	return s
}

// Scheduler exposes the action scheduler for the sweep loop.
func (s *Service) Scheduler() *action.Scheduler {
	return s.scheduler
}

// StartAction starts actionID for the player and returns its progress view.
func (s *Service) StartAction(ctx context.Context, playerID int64, actionID string, opts action.Options) (*action.View, error) {
	if _, err := s.character(ctx, playerID); err != nil {
		return nil, err
	}
	a, err := s.scheduler.Start(ctx, playerID, actionID, opts)
	if err != nil {
		return nil, err
	}
	v := a.View(s.now())
	return &v, nil
}

// StopAction cancels the player's action after settling elapsed windows.
func (s *Service) StopAction(ctx context.Context, playerID int64) (action.StopResult, error) {
	return s.scheduler.Stop(ctx, playerID)
}

// GetActiveAction settles elapsed windows and returns the running action's
// progress, or nil when the player is idle.
func (s *Service) GetActiveAction(ctx context.Context, playerID int64) (*action.View, error) {
	return s.scheduler.View(ctx, playerID)
}

// GetJobProgression returns the player's job level view.
func (s *Service) GetJobProgression(ctx context.Context, playerID int64) (progression.Progress, error) {
	c, err := s.character(ctx, playerID)
	if err != nil {
		return progression.Progress{}, err
	}
	return progression.Describe(s.curve, c.JobXP), nil
}

// GetSkillProgression returns the player's level view for skillID. The id
// must name a combat skill or an action track.
func (s *Service) GetSkillProgression(ctx context.Context, playerID int64, skillID string) (progression.Progress, error) {
	if !s.knownTrack(skillID) {
		return progression.Progress{}, gameerr.New(gameerr.UnknownEntity, "no skill %q", skillID)
	}
	c, err := s.character(ctx, playerID)
	if err != nil {
		return progression.Progress{}, err
	}
	return progression.Describe(s.curve, c.SkillXPFor(skillID)), nil
}

func (s *Service) knownTrack(id string) bool {
	if id == "" || id == character.JobTrack {
		return false
	}
	if _, ok := s.skills.Skill(id); ok {
		return true
	}
	cat := s.scheduler.Catalog()
	for _, aid := range cat.IDs() {
		if d, _ := cat.Action(aid); d.Track == id {
			return true
		}
	}
	return false
}

// GetStats returns the player's aggregated stats under current equipment.
func (s *Service) GetStats(ctx context.Context, playerID int64) (stats.AggregatedStats, error) {
	c, err := s.character(ctx, playerID)
	if err != nil {
		return stats.AggregatedStats{}, err
	}
	return s.aggregate(ctx, c)
}

func (s *Service) aggregate(ctx context.Context, c *character.Character) (stats.AggregatedStats, error) {
	eq, err := s.equipment.Equipment(ctx, c.ID)
	if err != nil {
		return stats.AggregatedStats{}, fmt.Errorf("loading equipment: %w", err)
	}
	return stats.Aggregate(c.Stats, eq.Bonuses(s.items)), nil
}

func (s *Service) character(ctx context.Context, playerID int64) (*character.Character, error) {
	c, err := s.chars.Get(ctx, playerID)
	if errors.Is(err, character.ErrNotFound) {
		return nil, gameerr.New(gameerr.UnknownEntity, "no player %d", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading player %d: %w", playerID, err)
	}
	return c, nil
}

// ActionCompleted implements action.Observer.
func (s *Service) ActionCompleted(ctx context.Context, c action.Completion) {
	s.publisher.Publish(ctx, Event{Type: EventActionCompleted, PlayerID: c.PlayerID, At: c.CompletedAt, Completion: &c})
}

// ActionCancelled implements action.Observer.
func (s *Service) ActionCancelled(ctx context.Context, a action.ActiveAction) {
	s.publisher.Publish(ctx, Event{Type: EventActionCancelled, PlayerID: a.PlayerID, At: s.now(), Cancelled: &a})
}

// tracker adapts the character store and curve to action.Progress.
type tracker struct {
	chars CharacterStore
	curve progression.Curve
}

func (t *tracker) Level(ctx context.Context, playerID int64, track string) (int, error) {
	c, err := t.chars.Get(ctx, playerID)
	if errors.Is(err, character.ErrNotFound) {
		return 0, gameerr.New(gameerr.UnknownEntity, "no player %d", playerID)
	}
	if err != nil {
		return 0, err
	}
	xp := c.JobXP
	if track != character.JobTrack {
		xp = c.SkillXPFor(track)
	}
	return t.curve.LevelFor(xp), nil
}

func (t *tracker) GrantXP(ctx context.Context, playerID int64, track string, xp int64) (progression.Progress, error) {
	total, err := t.chars.AddXP(ctx, playerID, track, xp)
	if err != nil {
		return progression.Progress{}, err
	}
	return progression.Describe(t.curve, total), nil
}
