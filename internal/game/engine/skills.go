package engine

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/skill"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/observability"
)

// TargetSpec describes one target of a skill use. Targets other than the
// caster are owned by the battle system, which passes in their stats, current
// HP (nil means full) and the status entries they carry.
type TargetSpec struct {
	ID      string                `json:"id"`
	Stats   stats.AggregatedStats `json:"stats"`
	HP      *int                  `json:"hp,omitempty"`
	Effects []condition.Entry     `json:"effects,omitempty"`
}

// SkillUse is the outcome of ResolveSkillUse. Each TargetResult carries the
// target's entries after the cast so the battle system can hand them back on
// the next use.
type SkillUse struct {
	skill.CastResult
	Pool     regen.PoolState `json:"pool"`
	Statuses StatusView      `json:"statuses"`
}

// CasterID is the target id that refers to the caster itself.
func CasterID(playerID int64) string {
	return strconv.FormatInt(playerID, 10)
}

// loadCaster builds the player's combatant from the settled pool and the
// stored status entries.
func (s *Service) loadCaster(ctx context.Context, playerID int64, u *poolUpdate) (*condition.Combatant, error) {
	entries, err := s.statuses.Statuses(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("loading statuses: %w", err)
	}
	caster := condition.NewCombatant(CasterID(playerID), u.Stats)
	caster.HP, caster.SP = u.Pool.CurrentHP, u.Pool.CurrentSP
	caster.Effects = condition.RestoreActiveSet(entries)
	return caster, nil
}

func (s *Service) saveCaster(ctx context.Context, playerID int64, caster *condition.Combatant, u *poolUpdate) error {
	if err := s.statuses.SaveStatuses(ctx, playerID, caster.Effects.All()); err != nil {
		return fmt.Errorf("saving statuses: %w", err)
	}
	u.Pool.CurrentHP, u.Pool.CurrentSP = caster.HP, caster.SP
	return nil
}

// ResolveSkillUse casts skillID for the player against targets. Stamina is
// spent from the player's settled pool, and the caster's HP/SP and status
// entries after the cast are persisted. A target whose ID is
// CasterID(playerID) is the caster.
//
// Precondition: skillID names a loaded skill.
// Postcondition: on rejection the player's pool and statuses are unchanged.
func (s *Service) ResolveSkillUse(ctx context.Context, playerID int64, skillID string, targets []TargetSpec) (SkillUse, error) {
	def, ok := s.skills.Skill(skillID)
	if !ok {
		return SkillUse{}, gameerr.New(gameerr.UnknownEntity, "no skill %q", skillID)
	}
	var out SkillUse
	pool, err := s.updatePool(ctx, playerID, func(u *poolUpdate) error {
		caster, err := s.loadCaster(ctx, playerID, u)
		if err != nil {
			return err
		}
		if !condition.CanUseSkills(caster.Effects) {
			return gameerr.New(gameerr.Incapacitated, "cannot use %s while stunned or silenced", def.Name)
		}

		combatants := make([]*condition.Combatant, 0, len(targets))
		for _, t := range targets {
			if t.ID == caster.ID {
				combatants = append(combatants, caster)
				continue
			}
			if t.ID == "" {
				return gameerr.New(gameerr.InvalidTarget, "target id must not be empty")
			}
			c := condition.NewCombatant(t.ID, t.Stats)
			if t.HP != nil {
				c.HP = min(max(*t.HP, 0), max(t.Stats.MaxHP, 0))
			}
			c.Effects = condition.RestoreActiveSet(t.Effects)
			if !c.Alive() {
				return gameerr.New(gameerr.InvalidTarget, "target %q is down", t.ID)
			}
			combatants = append(combatants, c)
		}

		res, err := skill.Cast(def, caster, combatants, s.roller)
		if err != nil {
			return err
		}
		out.CastResult = res
		out.Statuses = statusView(caster.Effects)
		return s.saveCaster(ctx, playerID, caster, u)
	})
	if err != nil {
		return SkillUse{}, err
	}
	out.Pool = pool
	s.logger.Info("skill used",
		observability.Player(playerID),
		zap.String("skill_id", def.ID),
		zap.Int("targets", len(out.Targets)),
		zap.Int("stamina_spent", out.StaminaSpent),
	)
	return out, nil
}
