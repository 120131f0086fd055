package gameserver_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/gameserver"
)

type countingSweeper struct {
	calls       atomic.Int64
	limit, par  atomic.Int64
	err         error
	completions int
}

func (s *countingSweeper) Sweep(_ context.Context, limit, parallelism int) (action.SweepStats, error) {
	s.calls.Add(1)
	s.limit.Store(int64(limit))
	s.par.Store(int64(parallelism))
	return action.SweepStats{Players: 1, Completions: s.completions}, s.err
}

func TestSweepLoop_TicksUntilCancelled(t *testing.T) {
	sw := &countingSweeper{completions: 1}
	loop := gameserver.NewSweepLoop(sw, 10*time.Millisecond, 50, 4, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sw.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep loop did not stop after cancel")
	}
	assert.Equal(t, int64(50), sw.limit.Load())
	assert.Equal(t, int64(4), sw.par.Load())
}

func TestSweepLoop_TickSurvivesErrors(t *testing.T) {
	sw := &countingSweeper{err: errors.New("database down")}
	loop := gameserver.NewSweepLoop(sw, time.Second, 10, 1, zaptest.NewLogger(t))
	st := loop.Tick(context.Background())
	assert.Equal(t, 1, st.Players)
	assert.Equal(t, int64(1), sw.calls.Load())
}

func TestNewSweepLoop_RejectsBadArguments(t *testing.T) {
	sw := &countingSweeper{}
	assert.Panics(t, func() { gameserver.NewSweepLoop(sw, 0, 1, 1, zaptest.NewLogger(t)) })
	assert.Panics(t, func() { gameserver.NewSweepLoop(sw, time.Second, 0, 1, zaptest.NewLogger(t)) })
}

func TestSweepLoop_CompletesDueActionsAndPublishes(t *testing.T) {
	hub := &recordingPublisher{}
	w := newWorld(t, hub)
	ctx := context.Background()
	_, err := w.svc.StartAction(ctx, w.playerID, "train", action.DefaultOptions())
	assert.NoError(t, err)

	w.clock.Set(3 * time.Minute)
	loop := gameserver.NewSweepLoop(w.svc.Scheduler(), time.Second, 10, 2, zaptest.NewLogger(t))
	st := loop.Tick(ctx)
	assert.Equal(t, 1, st.Players)
	assert.Equal(t, 3, st.Completions)
	assert.Len(t, hub.byType(engine.EventActionCompleted), 3)

	st = loop.Tick(ctx)
	assert.Zero(t, st.Completions, "a second sweep at the same instant finds nothing due")
}
