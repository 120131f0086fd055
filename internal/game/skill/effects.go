package skill

import (
	"fmt"
	"math"
	"sort"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
)

// ReasonResisted marks an effect whose chance roll failed.
const ReasonResisted = "resisted"

// EffectOutcome reports what one effect did to one target.
//
// Amount is, by type: HP dealt (DAMAGE, never counting absorbed damage), HP
// restored (HEAL), the entry magnitude (timed types), or entries removed
// (CLEANSE/DISPEL).
type EffectOutcome struct {
	Order    int        `json:"order"`
	Type     EffectType `json:"type"`
	TargetID string     `json:"target_id"`
	Applied  bool       `json:"applied"`
	Reason   string     `json:"reason,omitempty"`
	Amount   int        `json:"amount"`
	Absorbed int        `json:"absorbed,omitempty"`
	Stacks   int        `json:"stacks,omitempty"`
	Removed  []string   `json:"removed,omitempty"`
}

// ResolveEffects applies effects to target in Order, rolling each effect's
// chance against src. source prefixes the stacking key of timed entries so the
// same effect from the same skill stacks while others coexist.
//
// Precondition: effects come from a validated Definition.
// Postcondition: Returns one outcome per effect in application order; a failed
// roll yields Applied == false with Reason == ReasonResisted and no state change.
func ResolveEffects(caster, target *condition.Combatant, source string, effects []Effect, src dice.Source) []EffectOutcome {
	ordered := make([]Effect, len(effects))
	copy(ordered, effects)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	out := make([]EffectOutcome, 0, len(ordered))
	for _, e := range ordered {
		o := EffectOutcome{Order: e.Order, Type: e.Type, TargetID: target.ID}
		if _, ok := dice.Chance(src, e.Probability()); !ok {
			o.Reason = ReasonResisted
			out = append(out, o)
			continue
		}
		applyEffect(&o, e, caster, target, source)
		out = append(out, o)
	}
	return out
}

// Magnitude returns floor(Value + Ratio * stat) when Stat is set, otherwise
// Value. Buffs and debuffs scale from the target's base stat; every other
// type scales from the caster's effective stat.
//
// Postcondition: Returns >= 0.
func Magnitude(e Effect, caster, target *condition.Combatant) int {
	if e.Stat == nil {
		return max(0, e.Value)
	}
	var base int
	if e.Type == EffectBuff || e.Type == EffectDebuff {
		base = target.Base.Get(*e.Stat)
	} else {
		base = caster.Stat(*e.Stat)
	}
	return max(0, int(math.Floor(float64(e.Value)+e.Ratio*float64(base))))
}

func applyEffect(o *EffectOutcome, e Effect, caster, target *condition.Combatant, source string) {
	switch e.Type {
	case EffectDamage:
		o.Absorbed, o.Amount = target.TakeDamage(Magnitude(e, caster, target))
		o.Applied = true
	case EffectHeal:
		o.Amount = target.Heal(Magnitude(e, caster, target))
		o.Applied = true
	case EffectCleanse, EffectDispel:
		p := condition.Negative
		if e.Type == EffectDispel {
			p = condition.Positive
		}
		for _, r := range target.Effects.RemovePolarity(p, e.Value) {
			o.Removed = append(o.Removed, r.Key)
		}
		o.Amount = len(o.Removed)
		o.Applied = true
	default:
		kind, ok := statusKinds[e.Type]
		if !ok {
			o.Reason = fmt.Sprintf("unsupported effect type %q", e.Type)
			return
		}
		mag := Magnitude(e, caster, target)
		res, err := target.Effects.Apply(condition.Entry{
			Key:          fmt.Sprintf("%s#%d:%s", source, e.Order, e.Type),
			Source:       source,
			Kind:         kind,
			Stat:         e.Stat,
			Magnitude:    mag,
			MaxStacks:    e.MaxStacks,
			Duration:     e.DurationTurns,
			TickInterval: e.TickIntervalTurns,
		})
		if err != nil {
			o.Reason = err.Error()
			return
		}
		o.Amount = mag
		o.Stacks = res.Stacks
		o.Applied = true
	}
}
