package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/observability"
)

// poolState builds the client view from the stored pool and the maxima
// derived from agg.
func (s *Service) poolState(p character.Pool, agg stats.AggregatedStats) regen.PoolState {
	hp, hpCarry := regen.ClampPool(p.CurrentHP, p.HPCarry, agg.MaxHP)
	sp, spCarry := regen.ClampPool(p.CurrentSP, p.SPCarry, agg.MaxSP)
	return regen.PoolState{
		CurrentHP:     hp,
		MaxHP:         agg.MaxHP,
		CurrentSP:     sp,
		MaxSP:         agg.MaxSP,
		HPCarry:       hpCarry,
		SPCarry:       spCarry,
		HPRegenPerMin: regen.PerMinute(agg.MaxHP, s.rates.HPPercent),
		SPRegenPerMin: regen.PerMinute(agg.MaxSP, s.rates.SPPercent),
		LastSyncedAt:  p.SyncedAt,
		InBattle:      p.InBattle,
	}
}

// GetPoolState returns the authoritative anchor clients project from.
// Reads never settle, so fractional regen keeps accruing between writes.
func (s *Service) GetPoolState(ctx context.Context, playerID int64) (regen.PoolState, error) {
	c, err := s.character(ctx, playerID)
	if err != nil {
		return regen.PoolState{}, err
	}
	agg, err := s.aggregate(ctx, c)
	if err != nil {
		return regen.PoolState{}, err
	}
	return s.poolState(c.Pool, agg), nil
}

// poolUpdate is the working state handed to an updatePool callback. Pool is
// already settled at Now. A callback that changes equipment replaces Stats.
type poolUpdate struct {
	Character *character.Character
	Stats     stats.AggregatedStats
	Pool      regen.PoolState
	Now       time.Time
}

// updatePool serialises a pool write for one player: it settles regen at now
// keeping fractional progress in the carries,
// runs fn, re-derives maxima from the (possibly new) stats, clamps, persists
// and pushes a resync. Nothing is written when fn fails.
//
// Postcondition: 0 <= CurrentHP <= MaxHP and 0 <= CurrentSP <= MaxSP.
func (s *Service) updatePool(ctx context.Context, playerID int64, fn func(u *poolUpdate) error) (regen.PoolState, error) {
	unlock := s.poolLocks.Lock(playerID)
	defer unlock()

	c, err := s.character(ctx, playerID)
	if err != nil {
		return regen.PoolState{}, err
	}
	agg, err := s.aggregate(ctx, c)
	if err != nil {
		return regen.PoolState{}, err
	}
	now := s.now()
	settled := regen.SettlePool(s.poolState(c.Pool, agg), now)
	u := &poolUpdate{Character: c, Stats: agg, Pool: settled, Now: now}
	if err := fn(u); err != nil {
		return regen.PoolState{}, err
	}

	stored := character.Pool{
		CurrentHP: u.Pool.CurrentHP,
		CurrentSP: u.Pool.CurrentSP,
		HPCarry:   u.Pool.HPCarry,
		SPCarry:   u.Pool.SPCarry,
		SyncedAt:  now,
		InBattle:  u.Pool.InBattle,
	}
	p := s.poolState(stored, u.Stats)
	stored.CurrentHP, stored.CurrentSP = p.CurrentHP, p.CurrentSP
	stored.HPCarry, stored.SPCarry = p.HPCarry, p.SPCarry
	if err := s.chars.SavePool(ctx, playerID, stored); err != nil {
		return regen.PoolState{}, fmt.Errorf("saving pool: %w", err)
	}
	s.publishPool(ctx, playerID, p)
	return p, nil
}

func (s *Service) publishPool(ctx context.Context, playerID int64, p regen.PoolState) {
	s.publisher.Publish(ctx, Event{Type: EventPoolSync, PlayerID: playerID, At: p.LastSyncedAt, Pool: &p})
}

// SetBattleState enters or leaves battle. Regen up to now is banked first;
// none accrues while in battle. Leaving battle clears the player's status
// entries.
func (s *Service) SetBattleState(ctx context.Context, playerID int64, inBattle bool) (regen.PoolState, error) {
	p, err := s.updatePool(ctx, playerID, func(u *poolUpdate) error {
		if u.Pool.InBattle && !inBattle {
			if err := s.statuses.SaveStatuses(ctx, playerID, nil); err != nil {
				return fmt.Errorf("clearing statuses: %w", err)
			}
		}
		u.Pool.InBattle = inBattle
		return nil
	})
	if err != nil {
		return p, err
	}
	s.logger.Info("battle state changed", observability.Player(playerID), zap.Bool("in_battle", inBattle))
	return p, nil
}

// ApplyPoolDelta applies an authoritative HP/SP change outside of regen,
// such as battle damage or a reward, and forces client resync. Damage drains
// the player's shields before HP. The result is clamped to the pool bounds.
func (s *Service) ApplyPoolDelta(ctx context.Context, playerID int64, hpDelta, spDelta int) (regen.PoolState, error) {
	return s.updatePool(ctx, playerID, func(u *poolUpdate) error {
		u.Pool.CurrentSP += spDelta
		if hpDelta >= 0 {
			u.Pool.CurrentHP += hpDelta
			return nil
		}
		caster, err := s.loadCaster(ctx, playerID, u)
		if err != nil {
			return err
		}
		if caster.Effects.ShieldRemaining() == 0 {
			u.Pool.CurrentHP += hpDelta
			return nil
		}
		caster.TakeDamage(-hpDelta)
		return s.saveCaster(ctx, playerID, caster, u)
	})
}
