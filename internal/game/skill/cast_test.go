package skill_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/skill"
)

func TestCast_PowerStrikeDealsSeventy(t *testing.T) {
	caster := fighter("c")
	target := fighter("t")
	target.Base.MaxHP = 200
	target.HP = 200

	res, err := skill.Cast(strike(), caster, []*condition.Combatant{target}, dice.NewFixed(0))
	require.NoError(t, err)
	assert.Equal(t, 70, res.Targets[0].Dealt)
	assert.Equal(t, 130, res.Targets[0].HPAfter)
	assert.Equal(t, 10, res.StaminaSpent)
	assert.Equal(t, 30, caster.SP)
}

func TestCast_InsufficientStamina(t *testing.T) {
	caster := fighter("c")
	caster.SP = 9
	target := fighter("t")
	_, err := skill.Cast(strike(), caster, []*condition.Combatant{target}, dice.NewFixed(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gameerr.ErrInsufficientStamina))
	assert.Equal(t, 9, caster.SP)
	assert.Equal(t, 100, target.HP)
}

func TestCast_TargetLimits(t *testing.T) {
	_, err := skill.Cast(strike(), fighter("c"), nil, dice.NewFixed(0))
	assert.True(t, errors.Is(err, gameerr.ErrInvalidTarget))

	_, err = skill.Cast(strike(), fighter("c"), []*condition.Combatant{fighter("a"), fighter("b")}, dice.NewFixed(0))
	assert.True(t, errors.Is(err, gameerr.ErrInvalidTarget))

	cleave := strike()
	cleave.Targeting = skill.TargetMultiEnemy
	cleave.MaxTargets = ptr(2)
	a := fighter("a")
	_, err = skill.Cast(cleave, fighter("c"), []*condition.Combatant{a, a}, dice.NewFixed(0))
	assert.True(t, errors.Is(err, gameerr.ErrInvalidTarget))

	res, err := skill.Cast(cleave, fighter("c"), []*condition.Combatant{fighter("a"), fighter("b")}, dice.NewFixed(0))
	require.NoError(t, err)
	assert.Len(t, res.Targets, 2)
}

func TestCast_SelfIgnoresTargets(t *testing.T) {
	caster := fighter("c")
	caster.HP = 40
	mend := &skill.Definition{
		ID: "mend", Name: "Mend", Kind: skill.KindSupport, Hits: 1, StaminaCost: 5,
		Targeting: skill.TargetSelf,
		Effects:   []skill.Effect{{Order: 1, Type: skill.EffectHeal, Value: 25}},
	}
	res, err := skill.Cast(mend, caster, []*condition.Combatant{fighter("other")}, dice.NewFixed(0))
	require.NoError(t, err)
	require.Len(t, res.Targets, 1)
	assert.Equal(t, "c", res.Targets[0].TargetID)
	assert.Equal(t, 65, caster.HP)
	assert.Equal(t, 0, res.Damage.DamagePerHit)
}
