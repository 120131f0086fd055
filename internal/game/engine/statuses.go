package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/observability"
)

// StatusView summarises the status entries on a player for the battle system.
type StatusView struct {
	Entries      []condition.Entry `json:"entries"`
	Flags        []condition.Kind  `json:"flags,omitempty"`
	CanAct       bool              `json:"can_act"`
	CanUseSkills bool              `json:"can_use_skills"`
	Taunted      bool              `json:"taunted"`
	Shield       int               `json:"shield"`
}

func statusView(set *condition.ActiveSet) StatusView {
	v := StatusView{
		Entries:      set.All(),
		CanAct:       condition.CanAct(set),
		CanUseSkills: condition.CanUseSkills(set),
		Taunted:      condition.IsTaunted(set),
		Shield:       set.ShieldRemaining(),
	}
	for _, e := range v.Entries {
		if e.Kind.IsFlag() {
			v.Flags = append(v.Flags, e.Kind)
		}
	}
	return v
}

// GetStatuses returns the player's active status entries.
func (s *Service) GetStatuses(ctx context.Context, playerID int64) (StatusView, error) {
	if _, err := s.character(ctx, playerID); err != nil {
		return StatusView{}, err
	}
	entries, err := s.statuses.Statuses(ctx, playerID)
	if err != nil {
		return StatusView{}, fmt.Errorf("loading statuses: %w", err)
	}
	return statusView(condition.RestoreActiveSet(entries)), nil
}

// TurnResult is the outcome of EndTurn.
type TurnResult struct {
	Events   []condition.TickEvent `json:"events"`
	Statuses StatusView            `json:"statuses"`
	Pool     regen.PoolState       `json:"pool"`
}

// EndTurn advances the player's status entries by one battle turn: periodic
// entries fire through shields and HP, and expired entries are removed.
//
// Postcondition: no returned entry has Remaining <= 0.
func (s *Service) EndTurn(ctx context.Context, playerID int64) (TurnResult, error) {
	var out TurnResult
	pool, err := s.updatePool(ctx, playerID, func(u *poolUpdate) error {
		caster, err := s.loadCaster(ctx, playerID, u)
		if err != nil {
			return err
		}
		out.Events = caster.EndTurn()
		out.Statuses = statusView(caster.Effects)
		return s.saveCaster(ctx, playerID, caster, u)
	})
	if err != nil {
		return TurnResult{}, err
	}
	out.Pool = pool
	s.logger.Debug("turn ended",
		observability.Player(playerID),
		zap.Int("events", len(out.Events)),
		zap.Int("entries", len(out.Statuses.Entries)),
	)
	return out, nil
}
