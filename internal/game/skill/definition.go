// Package skill holds combat skill content and resolves a single cast:
// damage figures, ordered effects and stamina cost.
package skill

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// Kind classifies a skill.
type Kind string

const (
	KindAttack  Kind = "ATTACK"
	KindSupport Kind = "SUPPORT"
)

// Targeting describes who a skill may be cast on.
type Targeting string

const (
	TargetSelf        Targeting = "SELF"
	TargetSingleEnemy Targeting = "SINGLE_ENEMY"
	TargetSingleAlly  Targeting = "SINGLE_ALLY"
	TargetMultiEnemy  Targeting = "MULTI_ENEMY"
	TargetMultiAlly   Targeting = "MULTI_ALLY"
)

// Multi reports whether t may select more than one target.
func (t Targeting) Multi() bool {
	return t == TargetMultiEnemy || t == TargetMultiAlly
}

func (t Targeting) valid() bool {
	switch t {
	case TargetSelf, TargetSingleEnemy, TargetSingleAlly, TargetMultiEnemy, TargetMultiAlly:
		return true
	}
	return false
}

// EffectType selects how an Effect is applied.
type EffectType string

const (
	EffectDamage  EffectType = "DAMAGE"
	EffectHeal    EffectType = "HEAL"
	EffectDOT     EffectType = "DOT"
	EffectHOT     EffectType = "HOT"
	EffectBuff    EffectType = "BUFF_STAT"
	EffectDebuff  EffectType = "DEBUFF_STAT"
	EffectStun    EffectType = "STUN"
	EffectSilence EffectType = "SILENCE"
	EffectTaunt   EffectType = "TAUNT"
	EffectShield  EffectType = "SHIELD"
	EffectCleanse EffectType = "CLEANSE"
	EffectDispel  EffectType = "DISPEL"
)

// statusKinds maps effect types that leave a timed entry on the target.
var statusKinds = map[EffectType]condition.Kind{
	EffectDOT:     condition.KindDOT,
	EffectHOT:     condition.KindHOT,
	EffectBuff:    condition.KindBuff,
	EffectDebuff:  condition.KindDebuff,
	EffectStun:    condition.KindStun,
	EffectSilence: condition.KindSilence,
	EffectTaunt:   condition.KindTaunt,
	EffectShield:  condition.KindShield,
}

func (t EffectType) valid() bool {
	switch t {
	case EffectDamage, EffectHeal, EffectCleanse, EffectDispel:
		return true
	}
	_, ok := statusKinds[t]
	return ok
}

// Effect is one ordered step of a skill.
type Effect struct {
	Order             int              `yaml:"order" json:"order"`
	Type              EffectType       `yaml:"type" json:"type"`
	Stat              *stats.Attribute `yaml:"stat,omitempty" json:"stat,omitempty"`
	Value             int              `yaml:"value" json:"value"`
	Ratio             float64          `yaml:"ratio" json:"ratio"`
	DurationTurns     int              `yaml:"duration_turns" json:"duration_turns"`
	Chance            *float64         `yaml:"chance,omitempty" json:"chance,omitempty"`
	TickIntervalTurns int              `yaml:"tick_interval_turns" json:"tick_interval_turns"`
	MaxStacks         int              `yaml:"max_stacks" json:"max_stacks"`
}

// Probability returns the application chance; an unset chance always applies.
func (e Effect) Probability() float64 {
	if e.Chance == nil {
		return 1
	}
	return *e.Chance
}

// Definition is immutable skill content.
type Definition struct {
	ID            string           `yaml:"id" json:"id"`
	Name          string           `yaml:"name" json:"name"`
	Description   string           `yaml:"description" json:"description"`
	Kind          Kind             `yaml:"kind" json:"kind"`
	BasePower     *int             `yaml:"base_power,omitempty" json:"base_power,omitempty"`
	ScalingStat   *stats.Attribute `yaml:"scaling_stat,omitempty" json:"scaling_stat,omitempty"`
	ScalingRatio  float64          `yaml:"scaling_ratio" json:"scaling_ratio"`
	FlatBonus     int              `yaml:"flat_bonus" json:"flat_bonus"`
	Hits          int              `yaml:"hits" json:"hits"`
	StaminaCost   int              `yaml:"stamina_cost" json:"stamina_cost"`
	CooldownTurns int              `yaml:"cooldown_turns" json:"cooldown_turns"`
	Targeting     Targeting        `yaml:"targeting" json:"targeting"`
	MaxTargets    *int             `yaml:"max_targets,omitempty" json:"max_targets,omitempty"`
	Effects       []Effect         `yaml:"effects" json:"effects"`
}

// NewDefinition validates d and returns it with Effects sorted by Order.
//
// Precondition: d is non-nil.
// Postcondition: On success Effects are stably sorted by Order; on failure the
// error is a gameerr.InvalidSkillDefinition rejection listing every violation.
func NewDefinition(d *Definition) (*Definition, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(d.Effects, func(i, j int) bool { return d.Effects[i].Order < d.Effects[j].Order })
	return d, nil
}

// Validate checks every construction invariant of d.
func (d *Definition) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if d.ID == "" {
		add("id must not be empty")
	}
	if d.Name == "" {
		add("name must not be empty")
	}
	switch d.Kind {
	case KindAttack:
		if d.BasePower == nil {
			add("ATTACK skill requires base_power")
		}
	case KindSupport:
	default:
		add("kind must be ATTACK or SUPPORT, got %q", d.Kind)
	}
	if d.ScalingRatio < 0 || d.ScalingRatio > 3 {
		add("scaling_ratio must be in [0, 3], got %v", d.ScalingRatio)
	}
	if d.Hits < 1 {
		add("hits must be >= 1, got %d", d.Hits)
	}
	if d.StaminaCost < 0 {
		add("stamina_cost must be >= 0, got %d", d.StaminaCost)
	}
	if d.CooldownTurns < 0 {
		add("cooldown_turns must be >= 0, got %d", d.CooldownTurns)
	}
	switch {
	case !d.Targeting.valid():
		add("targeting %q is not valid", d.Targeting)
	case d.Targeting.Multi():
		if d.MaxTargets == nil || *d.MaxTargets < 2 {
			add("multi-target skill requires max_targets >= 2")
		}
	default:
		if d.MaxTargets != nil && *d.MaxTargets != 1 {
			add("single-target skill must not set max_targets other than 1")
		}
	}
	for i, e := range d.Effects {
		for _, p := range e.problems() {
			add("effects[%d]: %s", i, p)
		}
	}

	if len(problems) > 0 {
		name := d.ID
		if name == "" {
			name = "<unnamed>"
		}
		return gameerr.New(gameerr.InvalidSkillDefinition, "skill %s: %s", name, strings.Join(problems, "; "))
	}
	return nil
}

func (e Effect) problems() []string {
	var out []string
	if !e.Type.valid() {
		return append(out, fmt.Sprintf("type %q is not valid", e.Type))
	}
	if (e.Type == EffectBuff || e.Type == EffectDebuff) && e.Stat == nil {
		out = append(out, fmt.Sprintf("%s requires stat", e.Type))
	}
	if p := e.Probability(); p < 0 || p > 1 {
		out = append(out, fmt.Sprintf("chance must be in [0, 1], got %v", p))
	}
	if _, timed := statusKinds[e.Type]; timed && e.DurationTurns < 1 {
		out = append(out, fmt.Sprintf("%s requires duration_turns >= 1", e.Type))
	}
	if e.TickIntervalTurns < 0 {
		out = append(out, "tick_interval_turns must be >= 0")
	}
	if e.MaxStacks < 0 {
		out = append(out, "max_stacks must be >= 0")
	}
	if (e.Type == EffectCleanse || e.Type == EffectDispel) && e.Value < 0 {
		out = append(out, fmt.Sprintf("%s value must be >= 0", e.Type))
	}
	return out
}

// TargetLimit returns the maximum number of targets one cast may select.
func (d *Definition) TargetLimit() int {
	if d.Targeting.Multi() && d.MaxTargets != nil {
		return *d.MaxTargets
	}
	return 1
}
