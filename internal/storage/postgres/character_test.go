package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/storage/postgres"
)

func TestCharacterRepository(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		c := r.createCharacter(t, "ada")
		got, err := r.characters.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada", got.Name)
		assert.Equal(t, stats.CharacterStats{Vitality: 10, Strength: 8, Speed: 4, Dexterity: 6}, got.Stats)
		assert.Equal(t, 100, got.Pool.CurrentHP)
		assert.Equal(t, 44, got.Pool.CurrentSP)
		assert.True(t, got.Pool.SyncedAt.Equal(epoch))
		assert.Empty(t, got.SkillXP)
	})

	t.Run("duplicate name", func(t *testing.T) {
		r.createCharacter(t, "bryn")
		c, err := character.New("bryn", stats.CharacterStats{}, epoch)
		require.NoError(t, err)
		_, err = r.characters.Create(ctx, c)
		assert.ErrorIs(t, err, postgres.ErrCharacterNameTaken)
	})

	t.Run("create persists skill xp", func(t *testing.T) {
		c, err := character.New("cato", stats.CharacterStats{}, epoch)
		require.NoError(t, err)
		c.SkillXP["smithing"] = 40
		saved, err := r.characters.Create(ctx, c)
		require.NoError(t, err)
		got, err := r.characters.Get(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(40), got.SkillXPFor("smithing"))
	})

	t.Run("missing character", func(t *testing.T) {
		_, err := r.characters.Get(ctx, 999999)
		assert.ErrorIs(t, err, character.ErrNotFound)
		_, err = r.characters.AddXP(ctx, 999999, character.JobTrack, 5)
		assert.ErrorIs(t, err, character.ErrNotFound)
		_, err = r.characters.AddXP(ctx, 999999, "smithing", 5)
		assert.ErrorIs(t, err, character.ErrNotFound)
		assert.ErrorIs(t, r.characters.SavePool(ctx, 999999, character.Pool{}), character.ErrNotFound)
		assert.ErrorIs(t, r.characters.SaveStats(ctx, 999999, stats.CharacterStats{}), character.ErrNotFound)
	})

	t.Run("xp accumulates per track", func(t *testing.T) {
		c := r.createCharacter(t, "dara")
		total, err := r.characters.AddXP(ctx, c.ID, character.JobTrack, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		total, err = r.characters.AddXP(ctx, c.ID, character.JobTrack, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		total, err = r.characters.AddXP(ctx, c.ID, "smithing", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)

		_, err = r.characters.AddXP(ctx, c.ID, "smithing", -1)
		assert.Error(t, err)

		got, err := r.characters.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25), got.JobXP)
		assert.Equal(t, int64(7), got.SkillXPFor("smithing"))
	})

	t.Run("concurrent xp grants are additive", func(t *testing.T) {
		c := r.createCharacter(t, "eli")
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := r.characters.AddXP(ctx, c.ID, "mining", 3)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		got, err := r.characters.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(60), got.SkillXPFor("mining"))
	})

	t.Run("save pool and stats", func(t *testing.T) {
		c := r.createCharacter(t, "fen")
		pool := character.Pool{CurrentHP: 12, CurrentSP: 3, HPCarry: 0.25, SPCarry: 0.5, SyncedAt: epoch.Add(90e9), InBattle: true}
		require.NoError(t, r.characters.SavePool(ctx, c.ID, pool))
		base := stats.CharacterStats{Vitality: 1, Strength: 2, Speed: 3, Dexterity: 4}
		require.NoError(t, r.characters.SaveStats(ctx, c.ID, base))

		got, err := r.characters.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 12, got.Pool.CurrentHP)
		assert.Equal(t, 3, got.Pool.CurrentSP)
		assert.InDelta(t, 0.25, got.Pool.HPCarry, 1e-12)
		assert.InDelta(t, 0.5, got.Pool.SPCarry, 1e-12)
		assert.True(t, got.Pool.InBattle)
		assert.True(t, got.Pool.SyncedAt.Equal(pool.SyncedAt))
		assert.Equal(t, base, got.Stats)
	})
}
