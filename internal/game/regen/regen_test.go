package regen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/grindstone/internal/game/regen"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func pool() regen.PoolState {
	return regen.PoolState{
		CurrentHP: 50, MaxHP: 100, CurrentSP: 10, MaxSP: 40,
		HPRegenPerMin: 5, SPRegenPerMin: 4,
		LastSyncedAt: t0,
	}
}

func TestProject_Linear(t *testing.T) {
	hp, sp := pool().Project(t0.Add(2 * time.Minute))
	assert.InDelta(t, 60.0, hp, 1e-9)
	assert.InDelta(t, 18.0, sp, 1e-9)

	hp, _ = pool().Project(t0.Add(30 * time.Second))
	assert.InDelta(t, 52.5, hp, 1e-9)
}

func TestProject_CappedAtMax(t *testing.T) {
	hp, sp := pool().Project(t0.Add(24 * time.Hour))
	assert.Equal(t, 100.0, hp)
	assert.Equal(t, 40.0, sp)
}

func TestProject_FrozenInBattle(t *testing.T) {
	p := pool()
	p.InBattle = true
	hp, _ := p.Project(t0.Add(10 * time.Minute))
	assert.Equal(t, 50.0, hp)
}

func TestProject_ClampsStoredValues(t *testing.T) {
	p := pool()
	p.CurrentHP = -20
	p.InBattle = true
	hp, _ := p.Project(t0)
	assert.Equal(t, 0.0, hp)

	p.CurrentHP = 500
	hp, _ = p.Project(t0)
	assert.Equal(t, 100.0, hp)
}

func TestProject_BeforeSyncReturnsCurrent(t *testing.T) {
	hp, _ := pool().Project(t0.Add(-time.Minute))
	assert.Equal(t, 50.0, hp)
}

func TestSettlePool_BanksWholePoints(t *testing.T) {
	now := t0.Add(90 * time.Second)
	p := regen.SettlePool(pool(), now)
	assert.Equal(t, 57, p.CurrentHP)
	assert.InDelta(t, 0.5, p.HPCarry, 1e-9)
	assert.Equal(t, 16, p.CurrentSP)
	assert.Zero(t, p.SPCarry)
	assert.Equal(t, now, p.LastSyncedAt)
}

func TestSettlePool_RepeatedSettlesMatchOneProjection(t *testing.T) {
	p := pool()
	for i := 1; i <= 36; i++ {
		p = regen.SettlePool(p, t0.Add(time.Duration(i)*5*time.Second))
	}
	// 3 minutes at 5 and 4 points per minute.
	assert.Equal(t, 65, p.CurrentHP)
	assert.Equal(t, 22, p.CurrentSP)

	want, _ := pool().Project(t0.Add(3*time.Minute + 30*time.Second))
	got, _ := p.Project(t0.Add(3*time.Minute + 30*time.Second))
	assert.InDelta(t, want, got, 1e-6)
}

func TestSettlePool_FullPoolDropsCarry(t *testing.T) {
	p := pool()
	p.CurrentHP = 99
	p.HPCarry = 0.9
	p = regen.SettlePool(p, t0.Add(time.Minute))
	assert.Equal(t, 100, p.CurrentHP)
	assert.Zero(t, p.HPCarry)
}

func TestProject_IncludesCarry(t *testing.T) {
	p := pool()
	p.HPCarry = 0.75
	hp, _ := p.Project(t0.Add(3 * time.Second))
	assert.InDelta(t, 51.0, hp, 1e-9)
}

func TestProperty_SettleNeverLosesRegen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := pool()
		steps := rapid.SliceOfN(rapid.Int64Range(1, int64(20*time.Second)), 1, 50).Draw(t, "steps")
		p := start
		at := t0
		for _, d := range steps {
			at = at.Add(time.Duration(d))
			p = regen.SettlePool(p, at)
		}
		want, _ := start.Project(at)
		got, _ := p.Project(at)
		if diff := want - got; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("settled %v, one projection %v", got, want)
		}
	})
}

func TestSettlePool_ClampsShrunkMax(t *testing.T) {
	p := pool()
	p.CurrentHP = 100
	p.MaxHP = 80
	p = regen.SettlePool(p, t0)
	assert.Equal(t, 80, p.CurrentHP)
}

func TestPerMinute(t *testing.T) {
	assert.InDelta(t, 5.0, regen.PerMinute(100, 5), 1e-9)
	assert.InDelta(t, 4.0, regen.PerMinute(40, 10), 1e-9)
	assert.Equal(t, 0.0, regen.PerMinute(0, 10))
	assert.Equal(t, 0.0, regen.PerMinute(100, -1))
}

func TestProperty_ProjectionNeverExceedsMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHP := rapid.IntRange(0, 10_000).Draw(t, "max")
		a := regen.Anchor{
			Current:  rapid.IntRange(-100, 20_000).Draw(t, "current"),
			Max:      maxHP,
			PerMin:   rapid.Float64Range(0, 1e6).Draw(t, "per_min"),
			SyncedAt: t0,
			InBattle: rapid.Bool().Draw(t, "battle"),
		}
		elapsed := time.Duration(rapid.Int64Range(-int64(time.Hour), int64(1<<62)).Draw(t, "elapsed"))
		v := regen.Project(a, t0.Add(elapsed))
		if v > float64(maxHP) || v < 0 {
			t.Fatalf("projection %v outside [0, %d]", v, maxHP)
		}
	})
}

func TestProperty_ProjectionMonotonicOutOfBattle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := regen.Anchor{
			Current:  rapid.IntRange(0, 100).Draw(t, "current"),
			Max:      100,
			PerMin:   rapid.Float64Range(0, 50).Draw(t, "per_min"),
			SyncedAt: t0,
		}
		d1 := rapid.Int64Range(0, int64(time.Hour)).Draw(t, "d1")
		d2 := rapid.Int64Range(d1, int64(2*time.Hour)).Draw(t, "d2")
		if regen.Project(a, t0.Add(time.Duration(d1))) > regen.Project(a, t0.Add(time.Duration(d2))) {
			t.Fatalf("projection decreased over time")
		}
	})
}
