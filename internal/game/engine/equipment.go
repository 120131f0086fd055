package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/observability"
)

// EquipResult reports an equipment change and the stats that follow from it.
type EquipResult struct {
	Slot     inventory.Slot        `json:"slot"`
	ItemID   string                `json:"item_id,omitempty"`
	Previous string                `json:"previous,omitempty"`
	Stats    stats.AggregatedStats `json:"stats"`
	Pool     regen.PoolState       `json:"pool"`
}

// Equip moves one itemID from the player's inventory into its slot. Any item
// displaced from the slot goes back to the inventory. Regen is banked under
// the old maxima before they change.
//
// Precondition: itemID names an equipment item the player holds.
func (s *Service) Equip(ctx context.Context, playerID int64, itemID string) (EquipResult, error) {
	def, ok := s.items.Item(itemID)
	if !ok {
		return EquipResult{}, gameerr.New(gameerr.UnknownEntity, "no item %q", itemID)
	}
	if def.Kind != inventory.KindEquipment {
		return EquipResult{}, gameerr.New(gameerr.InvalidTarget, "%s cannot be equipped", def.Name)
	}
	res := EquipResult{Slot: def.Slot, ItemID: def.ID}
	pool, err := s.updatePool(ctx, playerID, func(u *poolUpdate) error {
		eq, err := s.equipment.Equipment(ctx, playerID)
		if err != nil {
			return fmt.Errorf("loading equipment: %w", err)
		}
		prev, err := eq.Equip(def)
		if err != nil {
			return gameerr.New(gameerr.InvalidTarget, "%v", err)
		}
		if err := s.inv.Deduct(ctx, playerID, []inventory.Stack{{ItemID: def.ID, Quantity: 1}}); err != nil {
			return err
		}
		if err := s.equipment.SaveEquipment(ctx, playerID, eq); err != nil {
			if gerr := s.inv.Grant(ctx, playerID, def.ID, 1); gerr != nil {
				s.logger.Error("returning item after failed equip", observability.Player(playerID), zap.Error(gerr))
			}
			return fmt.Errorf("saving equipment: %w", err)
		}
		if prev != "" {
			if err := s.inv.Grant(ctx, playerID, prev, 1); err != nil {
				return fmt.Errorf("returning %s: %w", prev, err)
			}
		}
		res.Previous = prev
		u.Stats = stats.Aggregate(u.Character.Stats, eq.Bonuses(s.items))
		res.Stats = u.Stats
		return nil
	})
	if err != nil {
		return EquipResult{}, err
	}
	res.Pool = pool
	s.logger.Info("item equipped",
		observability.Player(playerID),
		zap.String("item_id", def.ID),
		zap.String("previous", res.Previous),
	)
	return res, nil
}

// Unequip empties slot and returns its item to the inventory.
func (s *Service) Unequip(ctx context.Context, playerID int64, slot inventory.Slot) (EquipResult, error) {
	if !slot.Valid() {
		return EquipResult{}, gameerr.New(gameerr.UnknownEntity, "no slot %q", slot)
	}
	res := EquipResult{Slot: slot}
	pool, err := s.updatePool(ctx, playerID, func(u *poolUpdate) error {
		eq, err := s.equipment.Equipment(ctx, playerID)
		if err != nil {
			return fmt.Errorf("loading equipment: %w", err)
		}
		id, ok := eq.Unequip(slot)
		if !ok {
			return gameerr.New(gameerr.InvalidTarget, "nothing equipped in %s", slot)
		}
		if err := s.equipment.SaveEquipment(ctx, playerID, eq); err != nil {
			return fmt.Errorf("saving equipment: %w", err)
		}
		if err := s.inv.Grant(ctx, playerID, id, 1); err != nil {
			return fmt.Errorf("returning %s: %w", id, err)
		}
		res.Previous = id
		u.Stats = stats.Aggregate(u.Character.Stats, eq.Bonuses(s.items))
		res.Stats = u.Stats
		return nil
	})
	if err != nil {
		return EquipResult{}, err
	}
	res.Pool = pool
	s.logger.Info("item unequipped", observability.Player(playerID), zap.String("item_id", res.Previous))
	return res, nil
}
