package skill

import (
	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
)

// TargetResult is the effect of one cast on one target.
type TargetResult struct {
	TargetID string          `json:"target_id"`
	Dealt    int             `json:"dealt"`
	Absorbed int             `json:"absorbed"`
	HPAfter  int             `json:"hp_after"`
	Effects  []EffectOutcome `json:"effects"`
	// Active lists the target's status entries after the cast.
	Active []condition.Entry `json:"active"`
}

// CastResult is the full outcome of one skill use.
type CastResult struct {
	SkillID      string         `json:"skill_id"`
	Damage       DamageReport   `json:"damage"`
	StaminaSpent int            `json:"stamina_spent"`
	Targets      []TargetResult `json:"targets"`
}

// Cast resolves one use of def by caster against targets.
//
// SELF skills always resolve against caster and ignore targets. Other skills
// need between 1 and TargetLimit() targets. Stamina is spent before any
// damage; direct damage lands hit by hit through shields, then effects apply.
//
// Precondition: def is validated; caster and targets are non-nil.
// Postcondition: On rejection nothing is mutated. The rejection code is
// InsufficientStamina or InvalidTarget.
func Cast(def *Definition, caster *condition.Combatant, targets []*condition.Combatant, src dice.Source) (CastResult, error) {
	if def.Targeting == TargetSelf {
		targets = []*condition.Combatant{caster}
	}
	if len(targets) == 0 {
		return CastResult{}, gameerr.New(gameerr.InvalidTarget, "%s needs at least one target", def.Name)
	}
	if limit := def.TargetLimit(); len(targets) > limit {
		return CastResult{}, gameerr.New(gameerr.InvalidTarget, "%s accepts at most %d targets, got %d", def.Name, limit, len(targets))
	}
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if seen[t.ID] {
			return CastResult{}, gameerr.New(gameerr.InvalidTarget, "target %q selected twice", t.ID)
		}
		seen[t.ID] = true
	}
	if caster.SP < def.StaminaCost {
		return CastResult{}, gameerr.New(gameerr.InsufficientStamina, "%s costs %d SP, have %d", def.Name, def.StaminaCost, caster.SP)
	}

	caster.SP -= def.StaminaCost
	report := ResolveDamage(def, caster.Effective())
	res := CastResult{SkillID: def.ID, Damage: report, StaminaSpent: def.StaminaCost}
	for _, t := range targets {
		tr := TargetResult{TargetID: t.ID}
		if report.DamagePerHit > 0 {
			for hit := 0; hit < max(1, def.Hits); hit++ {
				absorbed, dealt := t.TakeDamage(report.DamagePerHit)
				tr.Absorbed += absorbed
				tr.Dealt += dealt
			}
		}
		tr.Effects = ResolveEffects(caster, t, def.ID, def.Effects, src)
		tr.HPAfter = t.HP
		tr.Active = t.Effects.All()
		res.Targets = append(res.Targets, tr)
	}
	return res, nil
}
