package gameserver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/action"
)

// Sweeper completes due actions across all players.
type Sweeper interface {
	Sweep(ctx context.Context, limit, parallelism int) (action.SweepStats, error)
}

// SweepLoop periodically completes due actions so players progress without
// polling. Each tick is one bounded sweep; ticks never overlap.
//
// Invariant: at most one sweep runs at a time.
type SweepLoop struct {
	sweeper     Sweeper
	interval    time.Duration
	batch       int
	parallelism int
	logger      *zap.Logger
}

// NewSweepLoop returns a loop that sweeps every interval.
//
// Precondition: interval, batch and parallelism must be > 0.
func NewSweepLoop(sweeper Sweeper, interval time.Duration, batch, parallelism int, logger *zap.Logger) *SweepLoop {
	if interval <= 0 {
		panic("gameserver.NewSweepLoop: interval must be > 0")
	}
	if batch <= 0 || parallelism <= 0 {
		panic("gameserver.NewSweepLoop: batch and parallelism must be > 0")
	}
	return &SweepLoop{
		sweeper:     sweeper,
		interval:    interval,
		batch:       batch,
		parallelism: parallelism,
		logger:      logger,
	}
}

// Run sweeps once per interval until ctx is cancelled.
func (l *SweepLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

// Tick runs a single sweep and logs its outcome.
func (l *SweepLoop) Tick(ctx context.Context) action.SweepStats {
	start := time.Now()
	st, err := l.sweeper.Sweep(ctx, l.batch, l.parallelism)
	switch {
	case err != nil && ctx.Err() == nil:
		l.logger.Error("sweep failed", zap.Error(err))
	case st.Failures > 0:
		l.logger.Warn("sweep finished with failures",
			zap.Int("players", st.Players),
			zap.Int("completions", st.Completions),
			zap.Int("failures", st.Failures),
		)
	case st.Completions > 0:
		l.logger.Debug("sweep finished",
			zap.Int("players", st.Players),
			zap.Int("completions", st.Completions),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return st
}
