package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
)

func TestInventoryRepository(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	t.Run("grant accumulates", func(t *testing.T) {
		c := r.createCharacter(t, "miner")
		require.NoError(t, r.items.Grant(ctx, c.ID, "copper_ore", 3))
		require.NoError(t, r.items.Grant(ctx, c.ID, "copper_ore", 4))
		require.NoError(t, r.items.Grant(ctx, c.ID, "copper_ore", 0))

		q, err := r.items.Quantity(ctx, c.ID, "copper_ore")
		require.NoError(t, err)
		assert.Equal(t, 7, q)
		ok, err := r.items.HasQuantity(ctx, c.ID, "copper_ore", 7)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = r.items.HasQuantity(ctx, c.ID, "copper_ore", 8)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("grant to missing character", func(t *testing.T) {
		assert.ErrorIs(t, r.items.Grant(ctx, 999999, "copper_ore", 1), character.ErrNotFound)
	})

	t.Run("deduct is all or nothing", func(t *testing.T) {
		c := r.createCharacter(t, "smith")
		require.NoError(t, r.items.Grant(ctx, c.ID, "copper_ore", 2))
		require.NoError(t, r.items.Grant(ctx, c.ID, "tin_ore", 1))

		err := r.items.Deduct(ctx, c.ID, []inventory.Stack{
			{ItemID: "copper_ore", Quantity: 2},
			{ItemID: "tin_ore", Quantity: 2},
		})
		assert.Equal(t, gameerr.MissingInputs, gameerr.CodeOf(err))

		held, err := r.items.Holdings(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"copper_ore": 2, "tin_ore": 1}, held)
	})

	t.Run("deduct merges stacks and prunes empties", func(t *testing.T) {
		c := r.createCharacter(t, "merger")
		require.NoError(t, r.items.Grant(ctx, c.ID, "copper_ore", 3))
		require.NoError(t, r.items.Grant(ctx, c.ID, "coal", 5))

		require.NoError(t, r.items.Deduct(ctx, c.ID, []inventory.Stack{
			{ItemID: "copper_ore", Quantity: 1},
			{ItemID: "copper_ore", Quantity: 2},
			{ItemID: "coal", Quantity: 1},
		}))
		held, err := r.items.Holdings(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"coal": 4}, held)

		// Duplicate stacks are summed before checking.
		err = r.items.Deduct(ctx, c.ID, []inventory.Stack{
			{ItemID: "coal", Quantity: 3},
			{ItemID: "coal", Quantity: 3},
		})
		assert.Equal(t, gameerr.MissingInputs, gameerr.CodeOf(err))
	})

	t.Run("deduct consumes the last unit", func(t *testing.T) {
		c := r.createCharacter(t, "last")
		require.NoError(t, r.items.Grant(ctx, c.ID, "bronze_helm", 1))
		require.NoError(t, r.items.Deduct(ctx, c.ID, []inventory.Stack{{ItemID: "bronze_helm", Quantity: 1}}))

		q, err := r.items.Quantity(ctx, c.ID, "bronze_helm")
		require.NoError(t, err)
		assert.Zero(t, q)
		held, err := r.items.Holdings(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, held)
	})

	t.Run("exhausted stack is restored when a later stack is short", func(t *testing.T) {
		c := r.createCharacter(t, "rollback")
		require.NoError(t, r.items.Grant(ctx, c.ID, "copper_ore", 1))

		err := r.items.Deduct(ctx, c.ID, []inventory.Stack{
			{ItemID: "copper_ore", Quantity: 1},
			{ItemID: "tin_ore", Quantity: 1},
		})
		assert.Equal(t, gameerr.MissingInputs, gameerr.CodeOf(err))

		held, err := r.items.Holdings(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"copper_ore": 1}, held)
	})

	t.Run("quantities never go negative", func(t *testing.T) {
		c := r.createCharacter(t, "prop")
		rapid.Check(t, func(rt *rapid.T) {
			ops := rapid.SliceOfN(rapid.IntRange(-5, 5), 1, 20).Draw(rt, "ops")
			for _, n := range ops {
				if n >= 0 {
					require.NoError(rt, r.items.Grant(ctx, c.ID, "gem", n))
					continue
				}
				err := r.items.Deduct(ctx, c.ID, []inventory.Stack{{ItemID: "gem", Quantity: -n}})
				if err != nil {
					require.Equal(rt, gameerr.MissingInputs, gameerr.CodeOf(err))
				}
				q, err := r.items.Quantity(ctx, c.ID, "gem")
				require.NoError(rt, err)
				require.GreaterOrEqual(rt, q, 0)
			}
		})
	})
}

func TestEquipmentRepository(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := r.createCharacter(t, "knight")

	eq, err := r.equipment.Equipment(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, eq.Snapshot())

	eq.Set(inventory.SlotHead, "iron_helm")
	eq.Set(inventory.SlotMainHand, "short_sword")
	require.NoError(t, r.equipment.SaveEquipment(ctx, c.ID, eq))

	got, err := r.equipment.Equipment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "iron_helm", got.Item(inventory.SlotHead))
	assert.Equal(t, "short_sword", got.Item(inventory.SlotMainHand))

	_, ok := got.Unequip(inventory.SlotHead)
	require.True(t, ok)
	require.NoError(t, r.equipment.SaveEquipment(ctx, c.ID, got))

	again, err := r.equipment.Equipment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, map[inventory.Slot]string{inventory.SlotMainHand: "short_sword"}, again.Snapshot())

	assert.ErrorIs(t, r.equipment.SaveEquipment(ctx, 999999, again), character.ErrNotFound)
}
