package regen

import (
	"sync"
	"time"
)

// DefaultTolerance is the gap in points below which a lower authoritative
// value is smoothed rather than snapped to.
const DefaultTolerance = 0.5

// Interpolator tracks the pool a client displays between server syncs.
//
// It resynchronises to an observed snapshot when the snapshot is below the
// display by more than the tolerance, when the snapshot is in battle, when a
// battle has just ended, when the maxima change, or when the snapshot is
// above the display by more than the tolerance. Otherwise it keeps the display
// anchor so small jitter does not cause visible jumps.
//
// Safe for concurrent use.
type Interpolator struct {
	mu        sync.Mutex
	tolerance float64
	anchor    PoolState
	ok        bool
}

// NewInterpolator returns an Interpolator; tolerance <= 0 uses DefaultTolerance.
func NewInterpolator(tolerance float64) *Interpolator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Interpolator{tolerance: tolerance}
}

// Observe feeds an authoritative snapshot received at now.
//
// Postcondition: Returns true when the display was resynchronised to snap.
func (i *Interpolator) Observe(snap PoolState, now time.Time) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.ok || i.needsResync(snap, now) {
		i.anchor = snap
		i.ok = true
		return true
	}
	return false
}

func (i *Interpolator) needsResync(snap PoolState, now time.Time) bool {
	prev := i.anchor
	switch {
	case snap.InBattle:
		return true
	case prev.InBattle && !snap.InBattle:
		return true
	case snap.MaxHP != prev.MaxHP || snap.MaxSP != prev.MaxSP:
		return true
	case snap.HPRegenPerMin != prev.HPRegenPerMin || snap.SPRegenPerMin != prev.SPRegenPerMin:
		return true
	}
	shownHP, shownSP := prev.Project(now)
	authHP, authSP := snap.Project(now)
	return diverges(authHP, shownHP, i.tolerance) || diverges(authSP, shownSP, i.tolerance)
}

func diverges(auth, shown, tolerance float64) bool {
	return auth < shown-tolerance || auth > shown+tolerance
}

// Displayed returns the HP and SP to show at now, or zeros before the first
// Observe.
//
// Postcondition: 0 <= hp <= MaxHP and 0 <= sp <= MaxSP of the current anchor.
func (i *Interpolator) Displayed(now time.Time) (hp, sp float64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.ok {
		return 0, 0
	}
	return i.anchor.Project(now)
}

// Anchor returns the snapshot currently driving the display.
func (i *Interpolator) Anchor() (PoolState, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.anchor, i.ok
}

// Reset discards all state; the next Observe always resynchronises.
func (i *Interpolator) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.anchor = PoolState{}
	i.ok = false
}
