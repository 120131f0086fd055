package inventory

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// Slot identifies an equipment slot. The set of slots is closed.
type Slot string

const (
	SlotHead     Slot = "head"
	SlotBody     Slot = "body"
	SlotHands    Slot = "hands"
	SlotLegs     Slot = "legs"
	SlotFeet     Slot = "feet"
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotNeck     Slot = "neck"
	SlotRing     Slot = "ring"
)

// Slots lists every slot in display order.
var Slots = []Slot{SlotHead, SlotBody, SlotHands, SlotLegs, SlotFeet, SlotMainHand, SlotOffHand, SlotNeck, SlotRing}

// Valid reports whether s is one of the fixed slots.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// Equipment maps each slot to the item definition ID equipped there.
// It is not safe for concurrent use; the caller must serialise access.
type Equipment struct {
	slots map[Slot]string
}

// NewEquipment returns an empty Equipment.
func NewEquipment() *Equipment {
	return &Equipment{slots: make(map[Slot]string)}
}

// Equip places def in its slot.
//
// Precondition: def must not be nil.
// Postcondition: on success, Item(def.Slot) == def.ID; previous holds the
// item ID that was displaced, or "" when the slot was empty.
func (e *Equipment) Equip(def *ItemDef) (previous string, err error) {
	if def.Kind != KindEquipment {
		return "", fmt.Errorf("inventory: item %q is not equipment", def.ID)
	}
	if !def.Slot.Valid() {
		return "", fmt.Errorf("inventory: item %q has invalid slot %q", def.ID, def.Slot)
	}
	previous = e.slots[def.Slot]
	e.slots[def.Slot] = def.ID
	return previous, nil
}

// Set assigns itemID to slot without validation. Used when rehydrating from storage.
func (e *Equipment) Set(slot Slot, itemID string) {
	if itemID == "" {
		delete(e.slots, slot)
		return
	}
	e.slots[slot] = itemID
}

// Unequip empties slot and returns the removed item ID.
//
// Postcondition: Item(slot) == "".
func (e *Equipment) Unequip(slot Slot) (string, bool) {
	id, ok := e.slots[slot]
	if ok {
		delete(e.slots, slot)
	}
	return id, ok
}

// Item returns the item ID in slot, or "".
func (e *Equipment) Item(slot Slot) string {
	return e.slots[slot]
}

// Snapshot returns a copy of the slot assignments.
func (e *Equipment) Snapshot() map[Slot]string {
	out := make(map[Slot]string, len(e.slots))
	for s, id := range e.slots {
		out[s] = id
	}
	return out
}

// Bonuses returns the stat bonus of every equipped item known to reg, in
// slot order. Items missing from reg contribute nothing.
func (e *Equipment) Bonuses(reg *Registry) []stats.EquipmentBonus {
	slots := make([]Slot, 0, len(e.slots))
	for s := range e.slots {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	out := make([]stats.EquipmentBonus, 0, len(slots))
	for _, s := range slots {
		def, ok := reg.Item(e.slots[s])
		if !ok {
			continue
		}
		out = append(out, def.Bonus)
	}
	return out
}
