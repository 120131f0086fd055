// Package regen projects HP and SP recovery between authoritative syncs.
//
// The server projects pools on read and settles them with SettlePool before
// every authoritative write. The Interpolator is the cosmetic client-side counterpart: it only ever derives
// a displayed value and never feeds back into authoritative state.
package regen

import (
	"math"
	"time"
)

// Rates expresses regeneration as a percentage of the pool maximum per minute.
type Rates struct {
	HPPercent float64
	SPPercent float64
}

// DefaultRates are 5% of MaxHP and 10% of MaxSP per minute.
var DefaultRates = Rates{HPPercent: 5, SPPercent: 10}

// PerMinute returns the points per minute for a pool of the given size.
func PerMinute(size int, percent float64) float64 {
	if size <= 0 || percent <= 0 {
		return 0
	}
	return float64(size) * percent / 100
}

// Anchor is one authoritative pool value at SyncedAt. Carry is regen already
// accrued toward the next whole point, in [0, 1).
type Anchor struct {
	Current  int
	Carry    float64
	Max      int
	PerMin   float64
	SyncedAt time.Time
	InBattle bool
}

// Project returns min(Max, Current + Carry + elapsed minutes * PerMin),
// clamped to [0, Max]. In battle, or when now precedes SyncedAt, the clamped
// anchor value is returned unchanged.
//
// Postcondition: 0 <= result <= max(0, Max).
func Project(a Anchor, now time.Time) float64 {
	upper := float64(max(0, a.Max))
	cur := math.Min(math.Max(float64(a.Current)+carry(a.Carry), 0), upper)
	if a.InBattle || a.PerMin <= 0 || !now.After(a.SyncedAt) {
		return cur
	}
	v := cur + now.Sub(a.SyncedAt).Minutes()*a.PerMin
	return math.Min(v, upper)
}

func carry(c float64) float64 {
	if c <= 0 || math.IsNaN(c) {
		return 0
	}
	return math.Min(c, math.Nextafter(1, 0))
}

// PoolState is the HP/SP view handed to clients for projection.
type PoolState struct {
	CurrentHP     int       `json:"current_hp"`
	MaxHP         int       `json:"max_hp"`
	CurrentSP     int       `json:"current_sp"`
	MaxSP         int       `json:"max_sp"`
	HPCarry       float64   `json:"hp_carry"`
	SPCarry       float64   `json:"sp_carry"`
	HPRegenPerMin float64   `json:"hp_regen_per_min"`
	SPRegenPerMin float64   `json:"sp_regen_per_min"`
	LastSyncedAt  time.Time `json:"last_synced_at"`
	InBattle      bool      `json:"in_battle"`
}

// HP returns the HP anchor.
func (p PoolState) HP() Anchor {
	return Anchor{Current: p.CurrentHP, Carry: p.HPCarry, Max: p.MaxHP, PerMin: p.HPRegenPerMin, SyncedAt: p.LastSyncedAt, InBattle: p.InBattle}
}

// SP returns the SP anchor.
func (p PoolState) SP() Anchor {
	return Anchor{Current: p.CurrentSP, Carry: p.SPCarry, Max: p.MaxSP, PerMin: p.SPRegenPerMin, SyncedAt: p.LastSyncedAt, InBattle: p.InBattle}
}

// Project returns the projected HP and SP at now.
func (p PoolState) Project(now time.Time) (hp, sp float64) {
	return Project(p.HP(), now), Project(p.SP(), now)
}

// SettlePool banks regen for both pools up to now.
//
// HP and SP share one sync timestamp, so each pool keeps the regen that has
// not yet reached a whole point in its carry. Settling any number of times
// yields the same value as one projection over the whole interval. Callers
// settle only before an authoritative write, never on read.
//
// Postcondition: LastSyncedAt == now when now is after the previous sync.
// Postcondition: a pool at its maximum has zero carry.
func SettlePool(p PoolState, now time.Time) PoolState {
	if !now.After(p.LastSyncedAt) {
		p.CurrentHP, p.HPCarry = ClampPool(p.CurrentHP, p.HPCarry, p.MaxHP)
		p.CurrentSP, p.SPCarry = ClampPool(p.CurrentSP, p.SPCarry, p.MaxSP)
		return p
	}
	hp, sp := p.Project(now)
	p.CurrentHP, p.HPCarry = split(hp)
	p.CurrentSP, p.SPCarry = split(sp)
	p.LastSyncedAt = now
	return p
}

// ClampPool bounds a stored value to [0, maxValue] and drops the carry of a
// full or empty-capacity pool.
func ClampPool(current int, c float64, maxValue int) (int, float64) {
	upper := max(maxValue, 0)
	current = min(max(current, 0), upper)
	if current >= upper {
		return current, 0
	}
	return current, carry(c)
}

// splitEpsilon absorbs float drift so repeated settles land on whole points.
const splitEpsilon = 1e-9

func split(v float64) (int, float64) {
	whole := math.Floor(v + splitEpsilon)
	return int(whole), carry(v - whole)
}
