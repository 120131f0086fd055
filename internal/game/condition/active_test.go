package condition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

func target() *condition.Combatant {
	return condition.NewCombatant("dummy", stats.Aggregate(stats.CharacterStats{Vitality: 10, Strength: 10}, nil))
}

func poison(mag, maxStacks int) condition.Entry {
	return condition.Entry{Key: "poison", Kind: condition.KindDOT, Magnitude: mag, MaxStacks: maxStacks, Duration: 3, TickInterval: 1}
}

func TestApply_NewEntry(t *testing.T) {
	s := condition.NewActiveSet()
	res, err := s.Apply(poison(4, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stacks)
	assert.False(t, res.Refreshed)
	assert.True(t, s.Has("poison"))
}

func TestApply_RejectsBadEntry(t *testing.T) {
	s := condition.NewActiveSet()
	_, err := s.Apply(condition.Entry{Kind: condition.KindStun, Duration: 1})
	assert.Error(t, err)
	_, err = s.Apply(condition.Entry{Key: "stun", Kind: condition.KindStun})
	assert.Error(t, err)
}

func TestApply_StacksToCapThenRefreshesOnly(t *testing.T) {
	c := target()
	s := c.Effects
	for i := 0; i < 2; i++ {
		_, err := s.Apply(poison(4, 2))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, s.Stacks("poison"))

	c.EndTurn()
	c.EndTurn()
	require.Equal(t, 1, s.All()[0].Remaining)

	res, err := s.Apply(poison(4, 2))
	require.NoError(t, err)
	assert.True(t, res.Capped)
	assert.Equal(t, 2, s.Stacks("poison"))
	assert.Equal(t, 3, s.All()[0].Remaining, "duration refreshed at cap")
}

func TestTick_DOTDamagesPerStackAndExpires(t *testing.T) {
	c := target()
	_, _ = c.Effects.Apply(poison(5, 3))
	_, _ = c.Effects.Apply(poison(5, 3))

	events := c.EndTurn()
	require.Len(t, events, 1)
	assert.Equal(t, 10, events[0].Amount)
	assert.Equal(t, 90, c.HP)

	c.EndTurn()
	events = c.EndTurn()
	assert.Equal(t, 70, c.HP)
	require.Len(t, events, 2)
	assert.True(t, events[1].Expired)
	assert.False(t, c.Effects.Has("poison"))
}

func TestTick_RespectsInterval(t *testing.T) {
	c := target()
	c.HP = 50
	_, _ = c.Effects.Apply(condition.Entry{Key: "regrowth", Kind: condition.KindHOT, Magnitude: 7, Duration: 4, TickInterval: 2})
	c.EndTurn()
	assert.Equal(t, 50, c.HP)
	c.EndTurn()
	assert.Equal(t, 57, c.HP)
	c.EndTurn()
	c.EndTurn()
	assert.Equal(t, 64, c.HP)
	assert.Equal(t, 0, c.Effects.Len())
}

func TestHeal_CappedAtMax(t *testing.T) {
	c := target()
	c.HP = 95
	assert.Equal(t, 5, c.Heal(50))
	assert.Equal(t, 100, c.HP)
}

func TestShield_AbsorbsBeforeHP(t *testing.T) {
	c := target()
	_, _ = c.Effects.Apply(condition.Entry{Key: "barrier", Kind: condition.KindShield, Magnitude: 15, Duration: 5})

	absorbed, dealt := c.TakeDamage(10)
	assert.Equal(t, 10, absorbed)
	assert.Equal(t, 0, dealt)
	assert.Equal(t, 5, c.Effects.ShieldRemaining())

	absorbed, dealt = c.TakeDamage(10)
	assert.Equal(t, 5, absorbed)
	assert.Equal(t, 5, dealt)
	assert.Equal(t, 95, c.HP)
	assert.False(t, c.Effects.Has("barrier"), "depleted shield is removed")
}

func TestTick_DOTIsAbsorbedByShield(t *testing.T) {
	c := target()
	_, _ = c.Effects.Apply(condition.Entry{Key: "barrier", Kind: condition.KindShield, Magnitude: 8, Duration: 5})
	_, _ = c.Effects.Apply(poison(5, 3))

	events := c.EndTurn()
	require.NotEmpty(t, events)
	assert.Equal(t, condition.KindDOT, events[0].Kind)
	assert.Equal(t, 5, events[0].Absorbed)
	assert.Equal(t, 0, events[0].Amount)
	assert.Equal(t, 100, c.HP)
	assert.Equal(t, 3, c.Effects.ShieldRemaining())

	events = c.EndTurn()
	require.NotEmpty(t, events)
	assert.Equal(t, 3, events[0].Absorbed)
	assert.Equal(t, 2, events[0].Amount)
	assert.Equal(t, 98, c.HP)
	assert.False(t, c.Effects.Has("barrier"))
}

func TestTick_ShieldBrokenMidTurnStillTicksLaterEntries(t *testing.T) {
	c := target()
	c.HP = 50
	_, _ = c.Effects.Apply(condition.Entry{Key: "barrier", Kind: condition.KindShield, Magnitude: 2, Duration: 5})
	_, _ = c.Effects.Apply(poison(5, 3))
	_, _ = c.Effects.Apply(condition.Entry{Key: "regrowth", Kind: condition.KindHOT, Magnitude: 4, Duration: 3, TickInterval: 1})

	events := c.EndTurn()
	require.Len(t, events, 2)
	assert.Equal(t, condition.KindDOT, events[0].Kind)
	assert.Equal(t, 2, events[0].Absorbed)
	assert.Equal(t, 3, events[0].Amount)
	assert.Equal(t, condition.KindHOT, events[1].Kind)
	assert.Equal(t, 4, events[1].Amount)
	assert.Equal(t, 51, c.HP)
	assert.Equal(t, 2, c.Effects.Len())
	assert.Equal(t, 2, c.Effects.All()[1].Remaining, "each entry loses exactly one turn")
}

func TestShield_ReapplyKeepsLarger(t *testing.T) {
	s := condition.NewActiveSet()
	_, _ = s.Apply(condition.Entry{Key: "barrier", Kind: condition.KindShield, Magnitude: 30, Duration: 2})
	_, _ = s.Apply(condition.Entry{Key: "barrier", Kind: condition.KindShield, Magnitude: 10, Duration: 2})
	assert.Equal(t, 30, s.ShieldRemaining())
}

func TestStatModifier_BuffsAndDebuffs(t *testing.T) {
	c := target()
	str := stats.Strength
	_, _ = c.Effects.Apply(condition.Entry{Key: "might", Kind: condition.KindBuff, Stat: &str, Magnitude: 4, MaxStacks: 2, Duration: 3})
	_, _ = c.Effects.Apply(condition.Entry{Key: "might", Kind: condition.KindBuff, Stat: &str, Magnitude: 4, MaxStacks: 2, Duration: 3})
	_, _ = c.Effects.Apply(condition.Entry{Key: "weaken", Kind: condition.KindDebuff, Stat: &str, Magnitude: 3, Duration: 3})
	assert.Equal(t, 5, condition.StatModifier(c.Effects, stats.Strength))
	assert.Equal(t, 15, c.Stat(stats.Strength))
	assert.Equal(t, 0, condition.StatModifier(c.Effects, stats.Speed))
}

func TestStat_FlooredAtZero(t *testing.T) {
	c := target()
	spd := stats.Speed
	_, _ = c.Effects.Apply(condition.Entry{Key: "slow", Kind: condition.KindDebuff, Stat: &spd, Magnitude: 50, Duration: 1})
	assert.Equal(t, 0, c.Stat(stats.Speed))
}

func TestFlags(t *testing.T) {
	s := condition.NewActiveSet()
	assert.True(t, condition.CanAct(s))
	_, _ = s.Apply(condition.Entry{Key: "hush", Kind: condition.KindSilence, Duration: 1})
	assert.True(t, condition.CanAct(s))
	assert.False(t, condition.CanUseSkills(s))
	_, _ = s.Apply(condition.Entry{Key: "daze", Kind: condition.KindStun, Duration: 1})
	assert.False(t, condition.CanAct(s))
	_, _ = s.Apply(condition.Entry{Key: "goad", Kind: condition.KindTaunt, Duration: 1})
	assert.True(t, condition.IsTaunted(s))
}

func TestRemovePolarity(t *testing.T) {
	s := condition.NewActiveSet()
	str := stats.Strength
	_, _ = s.Apply(poison(1, 1))
	_, _ = s.Apply(condition.Entry{Key: "might", Kind: condition.KindBuff, Stat: &str, Magnitude: 1, Duration: 2})
	_, _ = s.Apply(condition.Entry{Key: "daze", Kind: condition.KindStun, Duration: 2})
	_, _ = s.Apply(condition.Entry{Key: "hush", Kind: condition.KindSilence, Duration: 2})

	removed := s.RemovePolarity(condition.Negative, 2)
	require.Len(t, removed, 2)
	assert.Equal(t, "poison", removed[0].Key)
	assert.Equal(t, "daze", removed[1].Key)
	assert.True(t, s.Has("hush"))
	assert.True(t, s.Has("might"))

	removed = s.RemovePolarity(condition.Positive, 0)
	require.Len(t, removed, 1)
	assert.Equal(t, 1, s.Len())
}

func TestProperty_StacksNeverExceedCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxStacks := rapid.IntRange(0, 6).Draw(t, "max_stacks")
		applies := rapid.IntRange(1, 20).Draw(t, "applies")
		s := condition.NewActiveSet()
		for i := 0; i < applies; i++ {
			if _, err := s.Apply(poison(1, maxStacks)); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
		if got, limit := s.Stacks("poison"), max(1, maxStacks); got > limit {
			t.Fatalf("stacks %d exceed cap %d", got, limit)
		}
	})
}

func TestProperty_HPNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := target()
		hits := rapid.SliceOf(rapid.IntRange(0, 80)).Draw(t, "hits")
		for _, h := range hits {
			c.TakeDamage(h)
			if c.HP < 0 {
				t.Fatalf("hp %d < 0", c.HP)
			}
		}
	})
}

func TestEffective_AppliesModifiers(t *testing.T) {
	c := target()
	dex := stats.Dexterity
	_, _ = c.Effects.Apply(condition.Entry{Key: "focus", Kind: condition.KindBuff, Stat: &dex, Magnitude: 6, Duration: 2})
	eff := c.Effective()
	assert.Equal(t, 6, eff.Dexterity)
	assert.Equal(t, 10, eff.Strength)
	assert.Equal(t, c.Base.MaxHP, eff.MaxHP)
}

func TestRestoreActiveSet_ContinuesTicking(t *testing.T) {
	c := target()
	_, err := c.Effects.Apply(condition.Entry{Key: "bleed", Kind: condition.KindDOT, Magnitude: 5, Duration: 4, TickInterval: 2})
	require.NoError(t, err)
	c.EndTurn()

	restored := target()
	restored.Effects = condition.RestoreActiveSet(c.Effects.All())
	events := restored.EndTurn()
	require.Len(t, events, 1, "second turn of a two-turn interval fires")
	assert.Equal(t, 5, events[0].Amount)
	assert.Equal(t, 2, restored.Effects.All()[0].Remaining)
}

func TestRestoreActiveSet_DropsUnusableEntries(t *testing.T) {
	s := condition.RestoreActiveSet([]condition.Entry{
		{Key: "", Kind: condition.KindStun, Remaining: 1},
		{Key: "spent", Kind: condition.KindHOT, Remaining: 0},
		{Key: "broken", Kind: condition.KindShield, Magnitude: 0, Remaining: 2},
		{Key: "guard", Kind: condition.KindShield, Magnitude: 8, Remaining: 2},
		{Key: "guard", Kind: condition.KindShield, Magnitude: 99, Remaining: 2},
	})
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 8, s.ShieldRemaining())
	assert.Equal(t, 1, s.Stacks("guard"))
}

func TestMemoryStore_SaveReplacesAndCopies(t *testing.T) {
	ctx := context.Background()
	store := condition.NewMemoryStore()

	got, err := store.Statuses(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, got)

	str := stats.Strength
	in := []condition.Entry{{Key: "rage", Kind: condition.KindBuff, Stat: &str, Magnitude: 2, Stacks: 1, Remaining: 2}}
	require.NoError(t, store.SaveStatuses(ctx, 7, in))
	in[0].Magnitude = 50
	*in[0].Stat = stats.Speed

	got, err = store.Statuses(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Magnitude)
	assert.Equal(t, stats.Strength, *got[0].Stat)

	require.NoError(t, store.SaveStatuses(ctx, 7, nil))
	got, err = store.Statuses(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}
