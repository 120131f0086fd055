package action_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/action"
)

func active(playerID int64, due time.Duration) action.ActiveAction {
	return action.ActiveAction{
		PlayerID: playerID, ActionID: "train", AttemptID: uuid.New(), Attempt: 1, Loop: true,
		StartedAt: t0, ExpectedCompletionAt: t0.Add(due),
	}
}

func TestMemoryStore_ConditionalWrites(t *testing.T) {
	ctx := context.Background()
	s := action.NewMemoryStore()
	a := active(1, time.Minute)
	require.NoError(t, s.Create(ctx, a))
	assert.ErrorIs(t, s.Create(ctx, active(1, time.Minute)), action.ErrExists)

	next := a
	next.AttemptID = uuid.New()
	next.Attempt = 2
	assert.ErrorIs(t, s.Advance(ctx, uuid.New(), next), action.ErrStale)
	require.NoError(t, s.Advance(ctx, a.AttemptID, next))
	assert.ErrorIs(t, s.Advance(ctx, a.AttemptID, next), action.ErrStale, "second claim of the same attempt fails")

	assert.ErrorIs(t, s.Delete(ctx, 1, a.AttemptID), action.ErrStale)
	require.NoError(t, s.Delete(ctx, 1, next.AttemptID))
	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ConcurrentClaimSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := action.NewMemoryStore()
	a := active(1, time.Minute)
	require.NoError(t, s.Create(ctx, a))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := a
			next.AttemptID = uuid.New()
			if s.Advance(ctx, a.AttemptID, next) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestMemoryStore_ListDue(t *testing.T) {
	ctx := context.Background()
	s := action.NewMemoryStore()
	require.NoError(t, s.Create(ctx, active(1, 30*time.Second)))
	require.NoError(t, s.Create(ctx, active(2, 10*time.Second)))
	require.NoError(t, s.Create(ctx, active(3, 5*time.Minute)))

	due, err := s.ListDue(ctx, t0.Add(time.Minute), 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, int64(2), due[0].PlayerID)
	assert.Equal(t, int64(1), due[1].PlayerID)

	due, _ = s.ListDue(ctx, t0.Add(time.Minute), 1)
	assert.Len(t, due, 1)
}

func TestKeyedMutex_SerialisesSameKey(t *testing.T) {
	k := action.NewKeyedMutex()
	var inside, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(42)
			n := inside.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), peak.Load())
	assert.Zero(t, k.Len(), "idle keys are dropped")
}

func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	k := action.NewKeyedMutex()
	unlockA := k.Lock(1)
	done := make(chan struct{})
	go func() {
		unlock := k.Lock(2)
		unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on key 2 blocked by key 1")
	}
	unlockA()
}

func TestActiveAction_View(t *testing.T) {
	a := active(1, time.Minute)
	v := a.View(t0.Add(-time.Second))
	assert.Equal(t, 0.0, v.Progress)
	assert.Equal(t, 61*time.Second, v.Remaining)

	v = a.View(t0.Add(2 * time.Minute))
	assert.Equal(t, 1.0, v.Progress)
	assert.Zero(t, v.Remaining)
	assert.Equal(t, action.StateRunning, v.State)
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(action.ErrExists, action.ErrStale))
}
