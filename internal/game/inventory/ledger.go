package inventory

import (
	"context"
	"sync"

	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
)

// Stack is a quantity of one item.
type Stack struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Ledger is the process-local item quantity store used in standalone mode
// and tests. All methods are safe for concurrent use.
type Ledger struct {
	mu    sync.Mutex
	items map[int64]map[string]int
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{items: make(map[int64]map[string]int)}
}

// Quantity returns how many of itemID the player holds.
func (l *Ledger) Quantity(_ context.Context, playerID int64, itemID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items[playerID][itemID], nil
}

// HasQuantity reports whether the player holds at least qty of itemID.
func (l *Ledger) HasQuantity(ctx context.Context, playerID int64, itemID string, qty int) (bool, error) {
	have, err := l.Quantity(ctx, playerID, itemID)
	if err != nil {
		return false, err
	}
	return have >= qty, nil
}

// Deduct removes every stack or nothing.
//
// Postcondition: on a MissingInputs rejection no quantity has changed.
func (l *Ledger) Deduct(_ context.Context, playerID int64, stacks []Stack) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	need := make(map[string]int, len(stacks))
	for _, s := range stacks {
		if s.Quantity > 0 {
			need[s.ItemID] += s.Quantity
		}
	}
	held := l.items[playerID]
	for id, q := range need {
		if held[id] < q {
			return gameerr.New(gameerr.MissingInputs, "need %d %s, have %d", q, id, held[id])
		}
	}
	for id, q := range need {
		held[id] -= q
		if held[id] == 0 {
			delete(held, id)
		}
	}
	return nil
}

// Grant adds qty of itemID to the player.
//
// Precondition: qty >= 0.
func (l *Ledger) Grant(_ context.Context, playerID int64, itemID string, qty int) error {
	if qty <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	held, ok := l.items[playerID]
	if !ok {
		held = make(map[string]int)
		l.items[playerID] = held
	}
	held[itemID] += qty
	return nil
}

// Holdings returns a copy of everything the player holds.
func (l *Ledger) Holdings(_ context.Context, playerID int64) (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int, len(l.items[playerID]))
	for id, q := range l.items[playerID] {
		out[id] = q
	}
	return out, nil
}

// EquipmentBook is the process-local equipment store.
type EquipmentBook struct {
	mu      sync.Mutex
	players map[int64]map[Slot]string
}

// NewEquipmentBook returns an empty EquipmentBook.
func NewEquipmentBook() *EquipmentBook {
	return &EquipmentBook{players: make(map[int64]map[Slot]string)}
}

// Equipment returns a working copy of the player's equipment.
func (b *EquipmentBook) Equipment(_ context.Context, playerID int64) (*Equipment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	eq := NewEquipment()
	for s, id := range b.players[playerID] {
		eq.Set(s, id)
	}
	return eq, nil
}

// SaveEquipment replaces the player's stored equipment with eq.
func (b *EquipmentBook) SaveEquipment(_ context.Context, playerID int64, eq *Equipment) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.players[playerID] = eq.Snapshot()
	return nil
}
