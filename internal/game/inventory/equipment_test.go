package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

func testRegistry(t *testing.T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry()
	require.NoError(t, reg.RegisterItem(&inventory.ItemDef{
		ID: "vigor_ring", Name: "Ring of Vigor", Kind: inventory.KindEquipment, Slot: inventory.SlotRing,
		Bonus: stats.EquipmentBonus{VitalityBonus: stats.Int(2), HPBonus: stats.Int(10)},
	}))
	require.NoError(t, reg.RegisterItem(&inventory.ItemDef{
		ID: "iron_ring", Name: "Iron Ring", Kind: inventory.KindEquipment, Slot: inventory.SlotRing,
		Bonus: stats.EquipmentBonus{StrengthBonus: stats.Int(1)},
	}))
	require.NoError(t, reg.RegisterItem(&inventory.ItemDef{ID: "ore", Name: "Ore", Kind: inventory.KindMaterial}))
	return reg
}

func TestEquipment_EquipReplacesSlot(t *testing.T) {
	reg := testRegistry(t)
	eq := inventory.NewEquipment()
	vigor, _ := reg.Item("vigor_ring")
	iron, _ := reg.Item("iron_ring")

	prev, err := eq.Equip(vigor)
	require.NoError(t, err)
	assert.Empty(t, prev)

	prev, err = eq.Equip(iron)
	require.NoError(t, err)
	assert.Equal(t, "vigor_ring", prev)
	assert.Equal(t, "iron_ring", eq.Item(inventory.SlotRing))
}

func TestEquipment_RejectsNonEquipment(t *testing.T) {
	reg := testRegistry(t)
	ore, _ := reg.Item("ore")
	_, err := inventory.NewEquipment().Equip(ore)
	assert.Error(t, err)
}

func TestEquipment_BonusesFeedAggregate(t *testing.T) {
	reg := testRegistry(t)
	eq := inventory.NewEquipment()
	vigor, _ := reg.Item("vigor_ring")
	_, err := eq.Equip(vigor)
	require.NoError(t, err)

	agg := stats.Aggregate(stats.CharacterStats{Vitality: 10, Strength: 10}, eq.Bonuses(reg))
	assert.Equal(t, 120, agg.MaxHP)

	id, ok := eq.Unequip(inventory.SlotRing)
	assert.True(t, ok)
	assert.Equal(t, "vigor_ring", id)
	agg = stats.Aggregate(stats.CharacterStats{Vitality: 10, Strength: 10}, eq.Bonuses(reg))
	assert.Equal(t, 100, agg.MaxHP, "maxima recomputed after unequip")
}

func TestEquipment_UnknownItemContributesNothing(t *testing.T) {
	eq := inventory.NewEquipment()
	eq.Set(inventory.SlotHead, "ghost_helm")
	assert.Empty(t, eq.Bonuses(inventory.NewRegistry()))
}

func TestSlot_Valid(t *testing.T) {
	for _, s := range inventory.Slots {
		assert.True(t, s.Valid())
	}
	assert.False(t, inventory.Slot("tail").Valid())
}

func TestEquipmentBook_RoundTrip(t *testing.T) {
	ctx := context.Background()
	book := inventory.NewEquipmentBook()
	eq := inventory.NewEquipment()
	eq.Set(inventory.SlotHead, "cap")
	require.NoError(t, book.SaveEquipment(ctx, 1, eq))

	got, err := book.Equipment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cap", got.Item(inventory.SlotHead))

	got.Set(inventory.SlotHead, "")
	again, err := book.Equipment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cap", again.Item(inventory.SlotHead), "returned equipment is a copy")
}
