package postgres_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/action"
)

func activeAction(playerID int64, start time.Time, d time.Duration) action.ActiveAction {
	return action.ActiveAction{
		PlayerID:             playerID,
		ActionID:             "train",
		AttemptID:            uuid.New(),
		Attempt:              1,
		Loop:                 true,
		MaxAttempts:          3,
		StartedAt:            start,
		ExpectedCompletionAt: start.Add(d),
	}
}

func TestActionRepository(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	t.Run("get without a row", func(t *testing.T) {
		c := r.createCharacter(t, "idle")
		got, err := r.actions.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create is exclusive per player", func(t *testing.T) {
		c := r.createCharacter(t, "solo")
		a := activeAction(c.ID, epoch, time.Minute)
		require.NoError(t, r.actions.Create(ctx, a))
		assert.ErrorIs(t, r.actions.Create(ctx, activeAction(c.ID, epoch, time.Minute)), action.ErrExists)

		got, err := r.actions.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, a.AttemptID, got.AttemptID)
		assert.Equal(t, "train", got.ActionID)
		assert.Equal(t, 3, got.MaxAttempts)
		assert.True(t, got.Loop)
		assert.True(t, got.ExpectedCompletionAt.Equal(a.ExpectedCompletionAt))
	})

	t.Run("advance and delete require the current attempt", func(t *testing.T) {
		c := r.createCharacter(t, "stale")
		a := activeAction(c.ID, epoch, time.Minute)
		require.NoError(t, r.actions.Create(ctx, a))

		next := a
		next.AttemptID = uuid.New()
		next.Attempt = 2
		next.StartedAt = a.ExpectedCompletionAt
		next.ExpectedCompletionAt = a.ExpectedCompletionAt.Add(time.Minute)

		assert.ErrorIs(t, r.actions.Advance(ctx, uuid.New(), next), action.ErrStale)
		require.NoError(t, r.actions.Advance(ctx, a.AttemptID, next))
		assert.ErrorIs(t, r.actions.Advance(ctx, a.AttemptID, next), action.ErrStale)
		assert.ErrorIs(t, r.actions.Delete(ctx, c.ID, a.AttemptID), action.ErrStale)

		got, err := r.actions.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, got.Attempt)

		require.NoError(t, r.actions.Delete(ctx, c.ID, next.AttemptID))
		got, err = r.actions.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("concurrent claims succeed once", func(t *testing.T) {
		c := r.createCharacter(t, "race")
		a := activeAction(c.ID, epoch, time.Minute)
		require.NoError(t, r.actions.Create(ctx, a))

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := r.actions.Delete(ctx, c.ID, a.AttemptID); err == nil {
					wins.Add(1)
				} else {
					assert.ErrorIs(t, err, action.ErrStale)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})
}

func TestActionRepository_ListDue(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	var ids []int64
	for i, d := range []time.Duration{3 * time.Minute, time.Minute, 2 * time.Minute, 10 * time.Minute} {
		c := r.createCharacter(t, "due"+string(rune('a'+i)))
		ids = append(ids, c.ID)
		require.NoError(t, r.actions.Create(ctx, activeAction(c.ID, epoch, d)))
	}
	now := epoch.Add(3 * time.Minute)

	due, err := r.actions.ListDue(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, []int64{ids[1], ids[2], ids[0]}, []int64{due[0].PlayerID, due[1].PlayerID, due[2].PlayerID})

	limited, err := r.actions.ListDue(ctx, now, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, ids[1], limited[0].PlayerID)

	none, err := r.actions.ListDue(ctx, epoch, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
