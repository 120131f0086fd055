package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

func TestStatusRepository(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	t.Run("empty when nothing saved", func(t *testing.T) {
		c := r.createCharacter(t, "clean")
		got, err := r.statuses.Statuses(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("round trip keeps order and tick state", func(t *testing.T) {
		c := r.createCharacter(t, "warded")
		vit := stats.Vitality
		entries := []condition.Entry{
			{Key: "iron_skin#1:SHIELD", Source: "iron_skin", Kind: condition.KindShield, Magnitude: 12,
				Stacks: 1, MaxStacks: 1, Duration: 3, Remaining: 2, TickInterval: 1, Elapsed: 1},
			{Key: "iron_skin#2:BUFF_STAT", Source: "iron_skin", Kind: condition.KindBuff, Stat: &vit, Magnitude: 1,
				Stacks: 2, MaxStacks: 3, Duration: 3, Remaining: 3, TickInterval: 1},
		}
		require.NoError(t, r.statuses.SaveStatuses(ctx, c.ID, entries))

		got, err := r.statuses.Statuses(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("save replaces previous entries", func(t *testing.T) {
		c := r.createCharacter(t, "dazed")
		stun := condition.Entry{Key: "daze", Source: "bash", Kind: condition.KindStun,
			Stacks: 1, MaxStacks: 1, Duration: 1, Remaining: 1, TickInterval: 1}
		require.NoError(t, r.statuses.SaveStatuses(ctx, c.ID, []condition.Entry{stun}))
		require.NoError(t, r.statuses.SaveStatuses(ctx, c.ID, nil))

		got, err := r.statuses.Statuses(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing character", func(t *testing.T) {
		stun := condition.Entry{Key: "daze", Kind: condition.KindStun,
			Stacks: 1, MaxStacks: 1, Duration: 1, Remaining: 1, TickInterval: 1}
		err := r.statuses.SaveStatuses(ctx, 999999, []condition.Entry{stun})
		assert.ErrorIs(t, err, character.ErrNotFound)
	})
}
