package condition

import (
	"fmt"
	"slices"

	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// Entry is one status applied to a target.
//
// Magnitude means, by Kind: the per-stack pool delta per tick (DOT/HOT), the
// per-stack stat delta (BUFF_STAT/DEBUFF_STAT, always non-negative; the sign
// comes from the kind), or the remaining absorb (SHIELD). Flags ignore it.
type Entry struct {
	// Key identifies the entry for stacking; re-applying the same key stacks
	// or refreshes instead of adding a second entry.
	Key          string
	Source       string
	Kind         Kind
	Stat         *stats.Attribute
	Magnitude    int
	Stacks       int
	MaxStacks    int
	Duration     int
	Remaining    int
	TickInterval int
	// Elapsed counts turns since the entry was applied; periodic entries fire
	// when it reaches a multiple of TickInterval.
	Elapsed int
}

// Applied describes the outcome of ActiveSet.Apply.
type Applied struct {
	Stacks    int
	Refreshed bool
	Capped    bool
}

// ActiveSet tracks the status entries on one target in application order.
// It is not safe for concurrent use; the caller must serialise access.
type ActiveSet struct {
	entries []*Entry
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{}
}

// Apply adds e or, when an entry with the same Key exists, stacks onto it.
//
// A re-application below MaxStacks adds one stack and refreshes the duration.
// At the cap it refreshes the duration only. A shield re-application keeps the
// larger of the remaining and the new absorb.
//
// Precondition: e.Key non-empty; e.Duration >= 1.
// Postcondition: Has(e.Key) is true; Stacks(e.Key) <= max(1, e.MaxStacks).
func (s *ActiveSet) Apply(e Entry) (Applied, error) {
	if e.Key == "" {
		return Applied{}, fmt.Errorf("condition: entry key must not be empty")
	}
	if e.Duration < 1 {
		return Applied{}, fmt.Errorf("condition: entry %q duration must be >= 1, got %d", e.Key, e.Duration)
	}
	maxStacks := e.MaxStacks
	if maxStacks < 1 {
		maxStacks = 1
	}

	if existing := s.find(e.Key); existing != nil {
		existing.Remaining = e.Duration
		existing.Duration = e.Duration
		if e.Kind == KindShield {
			if e.Magnitude > existing.Magnitude {
				existing.Magnitude = e.Magnitude
			}
			return Applied{Stacks: existing.Stacks, Refreshed: true}, nil
		}
		if existing.Stacks >= maxStacks {
			return Applied{Stacks: existing.Stacks, Refreshed: true, Capped: true}, nil
		}
		existing.Stacks++
		existing.Magnitude = e.Magnitude
		return Applied{Stacks: existing.Stacks, Refreshed: true}, nil
	}

	e.Stacks = 1
	e.MaxStacks = maxStacks
	e.Remaining = e.Duration
	e.Elapsed = 0
	if e.TickInterval < 1 {
		e.TickInterval = 1
	}
	s.entries = append(s.entries, &e)
	return Applied{Stacks: 1}, nil
}

// RestoreActiveSet rebuilds a set from entries previously returned by All,
// in the same order. Entries without a key, already expired, or shields with
// nothing left to absorb are dropped.
func RestoreActiveSet(entries []Entry) *ActiveSet {
	s := NewActiveSet()
	for _, e := range entries {
		if e.Key == "" || e.Remaining <= 0 || s.find(e.Key) != nil {
			continue
		}
		if e.Kind == KindShield && e.Magnitude <= 0 {
			continue
		}
		e.Stacks = max(e.Stacks, 1)
		e.MaxStacks = max(e.MaxStacks, e.Stacks)
		e.TickInterval = max(e.TickInterval, 1)
		e.Elapsed = max(e.Elapsed, 0)
		s.entries = append(s.entries, &e)
	}
	return s
}

func (s *ActiveSet) find(key string) *Entry {
	for _, e := range s.entries {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Remove deletes the entry with key. Removing an absent key is a no-op.
//
// Postcondition: Has(key) is false.
func (s *ActiveSet) Remove(key string) {
	s.removeWhere(func(e *Entry) bool { return e.Key == key })
}

func (s *ActiveSet) removeWhere(match func(*Entry) bool) []Entry {
	var removed []Entry
	kept := s.entries[:0]
	for _, e := range s.entries {
		if match(e) {
			removed = append(removed, *e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
	return removed
}

// RemovePolarity removes up to limit entries of polarity p, oldest first.
// A limit of 0 removes all of them.
//
// Postcondition: Returns copies of the removed entries in removal order.
func (s *ActiveSet) RemovePolarity(p Polarity, limit int) []Entry {
	n := 0
	return s.removeWhere(func(e *Entry) bool {
		if e.Kind.Polarity() != p {
			return false
		}
		if limit > 0 && n >= limit {
			return false
		}
		n++
		return true
	})
}

// Has reports whether an entry with key is active.
func (s *ActiveSet) Has(key string) bool {
	return s.find(key) != nil
}

// Stacks returns the stack count of key, or 0 if absent.
func (s *ActiveSet) Stacks(key string) int {
	if e := s.find(key); e != nil {
		return e.Stacks
	}
	return 0
}

// HasKind reports whether any active entry is of kind k.
func (s *ActiveSet) HasKind(k Kind) bool {
	for _, e := range s.entries {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Len returns the number of active entries.
func (s *ActiveSet) Len() int {
	return len(s.entries)
}

// All returns copies of the active entries in application order.
func (s *ActiveSet) All() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	return out
}

// TickEvent reports one periodic delta or expiry produced by Tick.
type TickEvent struct {
	Key      string
	Kind     Kind
	Amount   int
	Absorbed int
	Expired  bool
}

// Tick advances every entry by one turn against target, which must own s.
// Periodic entries fire when their elapsed turns reach a multiple of
// TickInterval; every entry then loses one turn and expires at zero.
//
// Postcondition: No returned event with Expired set names a key still in s.
func (s *ActiveSet) Tick(target *Combatant) []TickEvent {
	var events []TickEvent
	// A DOT that drains a shield compacts s.entries mid-loop.
	for _, e := range slices.Clone(s.entries) {
		e.Elapsed++
		if e.Kind.IsPeriodic() && e.Elapsed%e.TickInterval == 0 {
			amount := e.Magnitude * e.Stacks
			switch e.Kind {
			case KindDOT:
				absorbed, dealt := target.TakeDamage(amount)
				events = append(events, TickEvent{Key: e.Key, Kind: e.Kind, Amount: dealt, Absorbed: absorbed})
			case KindHOT:
				events = append(events, TickEvent{Key: e.Key, Kind: e.Kind, Amount: target.Heal(amount)})
			}
		}
		e.Remaining--
	}
	for _, gone := range s.removeWhere(func(e *Entry) bool { return e.Remaining <= 0 || (e.Kind == KindShield && e.Magnitude <= 0) }) {
		events = append(events, TickEvent{Key: gone.Key, Kind: gone.Kind, Expired: true})
	}
	return events
}

// absorb drains shields in application order.
//
// Postcondition: Returns the amount absorbed, 0 <= absorbed <= amount.
func (s *ActiveSet) absorb(amount int) int {
	absorbed := 0
	for _, e := range s.entries {
		if amount-absorbed <= 0 {
			break
		}
		if e.Kind != KindShield || e.Magnitude <= 0 {
			continue
		}
		take := min(e.Magnitude, amount-absorbed)
		e.Magnitude -= take
		absorbed += take
	}
	s.removeWhere(func(e *Entry) bool { return e.Kind == KindShield && e.Magnitude <= 0 })
	return absorbed
}

// ShieldRemaining returns the total absorb left across all shields.
func (s *ActiveSet) ShieldRemaining() int {
	total := 0
	for _, e := range s.entries {
		if e.Kind == KindShield {
			total += e.Magnitude
		}
	}
	return total
}
