// Package watch follows one player's engine state from the outside: it seeds
// from the gRPC API, listens on the websocket push channel and renders an
// interpolated HP/SP status line between syncs.
package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/gameserver"
	"github.com/cory-johannsen/grindstone/internal/gameserver/enginev1"
)

// Watcher holds the client-side view of one player.
type Watcher struct {
	playerID int64
	interp   *regen.Interpolator
	out      io.Writer
	color    bool
	now      func() time.Time
	logger   *zap.Logger

	mu        sync.Mutex
	active    *action.ActiveAction
	lastEvent string
}

// Options configure a Watcher.
type Options struct {
	// Tolerance is the interpolator resync threshold in pool points.
	Tolerance float64
	// Color enables ANSI styling.
	Color bool
	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time
}

// New creates a Watcher for playerID writing status lines to out.
//
// Precondition: playerID > 0; out and logger must be non-nil.
func New(playerID int64, out io.Writer, opts Options, logger *zap.Logger) *Watcher {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Watcher{
		playerID: playerID,
		interp:   regen.NewInterpolator(opts.Tolerance),
		out:      out,
		color:    opts.Color,
		now:      now,
		logger:   logger,
	}
}

// Seed primes the watcher from the engine's read operations.
func (w *Watcher) Seed(ctx context.Context, client enginev1.EngineServiceClient) error {
	req := &enginev1.PlayerRequest{PlayerId: w.playerID}
	pool, err := client.GetPoolState(ctx, req)
	if err != nil {
		return fmt.Errorf("watch: reading pool: %w", err)
	}
	w.interp.Observe(gameserver.PoolStateFromProto(pool), w.now())

	resp, err := client.GetActiveAction(ctx, req)
	if err != nil {
		return fmt.Errorf("watch: reading active action: %w", err)
	}
	active, err := gameserver.ActiveActionFromProto(resp.GetView().GetAction())
	if err != nil {
		return fmt.Errorf("watch: decoding active action: %w", err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = active
	return nil
}

// Handle applies one pushed event.
func (w *Watcher) Handle(ev engine.Event) {
	if ev.PlayerID != w.playerID {
		return
	}
	now := w.now()
	switch ev.Type {
	case engine.EventPoolSync:
		if ev.Pool == nil {
			return
		}
		if w.interp.Observe(*ev.Pool, now) {
			w.logger.Debug("pool resynced", zap.Int("hp", ev.Pool.CurrentHP), zap.Int("sp", ev.Pool.CurrentSP))
		}
	case engine.EventActionCompleted:
		c := ev.Completion
		if c == nil {
			return
		}
		w.mu.Lock()
		w.active = c.Next
		if c.Success {
			w.lastEvent = fmt.Sprintf("%s #%d done +%d xp (level %d)", c.ActionID, c.Attempt, c.XP, c.Progress.Level)
		} else {
			w.lastEvent = fmt.Sprintf("%s #%d failed", c.ActionID, c.Attempt)
		}
		if c.StopReason != action.StopNone {
			w.lastEvent += ", stopped: " + string(c.StopReason)
		}
		w.mu.Unlock()
	case engine.EventActionCancelled:
		w.mu.Lock()
		w.active = nil
		if ev.Cancelled != nil {
			w.lastEvent = ev.Cancelled.ActionID + " cancelled"
		}
		w.mu.Unlock()
	}
}

// Frame returns the current display state.
func (w *Watcher) Frame() Frame {
	now := w.now()
	f := Frame{Now: now, Color: w.color}
	f.Pool, f.HasPool = w.interp.Anchor()
	f.HP, f.SP = w.interp.Displayed(now)
	w.mu.Lock()
	if w.active != nil {
		a := *w.active
		f.Action = &a
	}
	f.LastEvent = w.lastEvent
	w.mu.Unlock()
	return f
}

// Draw writes the current status line, replacing the previous one.
func (w *Watcher) Draw() error {
	_, err := io.WriteString(w.out, ClearLine+Render(w.Frame()))
	return err
}

// Run consumes events from conn and redraws every refresh until ctx ends or
// the connection fails.
//
// Precondition: refresh > 0.
func (w *Watcher) Run(ctx context.Context, conn *websocket.Conn, refresh time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		_ = conn.Close()
		return nil
	})
	g.Go(func() error {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watch: reading push: %w", err)
			}
			var ev engine.Event
			if err := json.Unmarshal(data, &ev); err != nil {
				w.logger.Warn("undecodable push frame", zap.Error(err))
				continue
			}
			w.Handle(ev)
		}
	})
	g.Go(func() error {
		ticker := time.NewTicker(refresh)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := w.Draw(); err != nil {
					return err
				}
			}
		}
	})
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Dial opens the push websocket for playerID at url, which must not carry a
// query string.
func Dial(ctx context.Context, url string, playerID int64) (*websocket.Conn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, fmt.Sprintf("%s?player_id=%d", url, playerID), nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("watch: dialing %s: %w", url, err)
	}
	return conn, nil
}
