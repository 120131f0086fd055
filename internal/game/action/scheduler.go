package action

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
	"github.com/cory-johannsen/grindstone/internal/observability"
)

// DefaultMaxCatchUp bounds how many elapsed windows one Poll resolves.
const DefaultMaxCatchUp = 500

// Inventory is the item service the scheduler consumes and grants through.
type Inventory interface {
	HasQuantity(ctx context.Context, playerID int64, itemID string, qty int) (bool, error)
	// Deduct removes every stack or nothing, returning a gameerr.MissingInputs
	// rejection when any stack is short.
	Deduct(ctx context.Context, playerID int64, stacks []inventory.Stack) error
	Grant(ctx context.Context, playerID int64, itemID string, qty int) error
}

// Progress reads levels and grants XP on a progression track.
type Progress interface {
	Level(ctx context.Context, playerID int64, track string) (int, error)
	GrantXP(ctx context.Context, playerID int64, track string, xp int64) (progression.Progress, error)
}

// Completion records one resolved window.
type Completion struct {
	PlayerID    int64                `json:"player_id"`
	ActionID    string               `json:"action_id"`
	AttemptID   uuid.UUID            `json:"attempt_id"`
	Attempt     int                  `json:"attempt"`
	Success     bool                 `json:"success"`
	XP          int64                `json:"xp"`
	Outputs     []inventory.Stack    `json:"outputs,omitempty"`
	Progress    progression.Progress `json:"progress"`
	CompletedAt time.Time            `json:"completed_at"`
	// Next is the attempt that started when this one completed, nil when the
	// action stopped.
	Next       *ActiveAction `json:"next,omitempty"`
	StopReason StopReason    `json:"stop_reason,omitempty"`
}

// Observer is notified of every completion and cancellation after it has
// been committed. Calls happen with the player's lock held and must not call
// back into the Scheduler for the same player.
type Observer interface {
	ActionCompleted(ctx context.Context, c Completion)
	ActionCancelled(ctx context.Context, a ActiveAction)
}

// PollResult is the state after settling elapsed windows.
type PollResult struct {
	State       State         `json:"state"`
	Active      *ActiveAction `json:"active,omitempty"`
	Completions []Completion  `json:"completions,omitempty"`
}

// StopResult is the outcome of Stop.
type StopResult struct {
	Completions []Completion `json:"completions,omitempty"`
	// Cancelled is the in-progress attempt that was discarded, nil when the
	// action had already stopped on its own while settling.
	Cancelled *ActiveAction `json:"cancelled,omitempty"`
}

// Config tunes a Scheduler.
type Config struct {
	MaxCatchUp int
	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time
}

// Scheduler is the ActiveAction state machine. Operations for one player are
// serialised through a KeyedMutex; the Store's conditional writes guard
// against writers outside this process.
type Scheduler struct {
	store      Store
	catalog    *Catalog
	inv        Inventory
	progress   Progress
	roller     *dice.Roller
	locks      *KeyedMutex
	now        func() time.Time
	maxCatchUp int
	observer   Observer
	logger     *zap.Logger
}

// NewScheduler creates a Scheduler.
//
// Precondition: every argument is non-nil.
func NewScheduler(store Store, catalog *Catalog, inv Inventory, progress Progress, roller *dice.Roller, cfg Config, logger *zap.Logger) *Scheduler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxCatchUp := cfg.MaxCatchUp
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Scheduler{
		store:      store,
		catalog:    catalog,
		inv:        inv,
		progress:   progress,
		roller:     roller,
		locks:      NewKeyedMutex(),
		now:        now,
		maxCatchUp: maxCatchUp,
		logger:     logger,
	}
}

// SetObserver registers o for completion and cancellation notices.
// Must be called before the Scheduler is used concurrently.
func (s *Scheduler) SetObserver(o Observer) {
	s.observer = o
}

// Catalog returns the action catalog.
func (s *Scheduler) Catalog() *Catalog {
	return s.catalog
}

// Start begins actionID for playerID.
//
// Windows of an existing action that already elapsed are settled first, so a
// finished non-looping action does not block a new start.
//
// Precondition: opts.MaxAttempts >= 0.
// Postcondition: On success inputs for the first attempt are deducted and the
// new ActiveAction has ExpectedCompletionAt == now + ActionTimeSeconds. On any
// rejection (UnknownEntity, AlreadyRunning, LevelTooLow, MissingInputs)
// nothing has changed.
func (s *Scheduler) Start(ctx context.Context, playerID int64, actionID string, opts Options) (*ActiveAction, error) {
	def, ok := s.catalog.Action(actionID)
	if !ok {
		return nil, gameerr.New(gameerr.UnknownEntity, "no action %q", actionID)
	}
	if opts.MaxAttempts < 0 {
		opts.MaxAttempts = 0
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	res, err := s.pollLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if res.Active != nil {
		return nil, gameerr.New(gameerr.AlreadyRunning, "already running %s", res.Active.ActionID)
	}

	level, err := s.progress.Level(ctx, playerID, def.Track)
	if err != nil {
		return nil, fmt.Errorf("reading %s level: %w", def.Track, err)
	}
	if level < def.RequiredLevel {
		return nil, gameerr.New(gameerr.LevelTooLow, "%s requires %s level %d, have %d", def.Name, def.Track, def.RequiredLevel, level)
	}
	for _, in := range def.InputItems {
		has, err := s.inv.HasQuantity(ctx, playerID, in.ItemID, in.Quantity)
		if err != nil {
			return nil, fmt.Errorf("checking input %s: %w", in.ItemID, err)
		}
		if !has {
			return nil, gameerr.New(gameerr.MissingInputs, "%s needs %d %s", def.Name, in.Quantity, in.ItemID)
		}
	}
	if err := s.deductInputs(ctx, playerID, def); err != nil {
		return nil, err
	}

	now := s.now()
	a := ActiveAction{
		PlayerID:             playerID,
		ActionID:             def.ID,
		AttemptID:            uuid.New(),
		Attempt:              1,
		Loop:                 opts.Loop,
		MaxAttempts:          opts.MaxAttempts,
		StartedAt:            now,
		ExpectedCompletionAt: now.Add(def.Duration()),
	}
	if err := s.store.Create(ctx, a); err != nil {
		s.refundInputs(ctx, playerID, def)
		if errors.Is(err, ErrExists) {
			return nil, gameerr.New(gameerr.AlreadyRunning, "another action started concurrently")
		}
		return nil, fmt.Errorf("creating active action: %w", err)
	}
	s.logger.Info("action started",
		observability.Player(playerID),
		zap.String("action", def.ID),
		zap.String("attempt_id", a.AttemptID.String()),
		zap.Bool("loop", a.Loop),
		zap.Int("max_attempts", a.MaxAttempts),
		zap.Time("expected_completion_at", a.ExpectedCompletionAt),
	)
	return &a, nil
}

// Poll settles every elapsed window of the player's action, up to the
// catch-up bound. Polling again without new elapsed time changes nothing.
//
// Postcondition: Each returned Completion has been claimed in the Store
// exactly once and its rewards granted.
func (s *Scheduler) Poll(ctx context.Context, playerID int64) (PollResult, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()
	return s.pollLocked(ctx, playerID)
}

// View polls and returns the client-facing progress, or nil when IDLE.
func (s *Scheduler) View(ctx context.Context, playerID int64) (*View, error) {
	res, err := s.Poll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if res.Active == nil {
		return nil, nil
	}
	v := res.Active.View(s.now())
	return &v, nil
}

// Stop settles elapsed windows, then cancels the in-progress attempt without
// partial credit. Inputs of the cancelled attempt are not refunded.
//
// Postcondition: The player is IDLE. Returns NoActiveAction when the player
// was already IDLE.
func (s *Scheduler) Stop(ctx context.Context, playerID int64) (StopResult, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	cur, err := s.store.Get(ctx, playerID)
	if err != nil {
		return StopResult{}, fmt.Errorf("loading active action: %w", err)
	}
	if cur == nil {
		return StopResult{}, gameerr.New(gameerr.NoActiveAction, "nothing to stop")
	}

	res, err := s.pollLocked(ctx, playerID)
	if err != nil {
		return StopResult{}, err
	}
	out := StopResult{Completions: res.Completions}
	if res.Active == nil {
		return out, nil
	}
	if err := s.store.Delete(ctx, playerID, res.Active.AttemptID); err != nil {
		return out, fmt.Errorf("cancelling attempt %s: %w", res.Active.AttemptID, err)
	}
	out.Cancelled = res.Active
	s.logger.Info("action stopped",
		observability.Player(playerID),
		zap.String("action", res.Active.ActionID),
		zap.Int("attempt", res.Active.Attempt),
	)
	if s.observer != nil {
		s.observer.ActionCancelled(ctx, *res.Active)
	}
	return out, nil
}

func (s *Scheduler) pollLocked(ctx context.Context, playerID int64) (PollResult, error) {
	cur, err := s.store.Get(ctx, playerID)
	if err != nil {
		return PollResult{}, fmt.Errorf("loading active action: %w", err)
	}
	res := PollResult{State: StateIdle}
	if cur == nil {
		return res, nil
	}
	def, ok := s.catalog.Action(cur.ActionID)
	if !ok {
		// Content removed while running: drop the orphan rather than wedge the player.
		s.logger.Warn("dropping active action with unknown definition",
			observability.Player(playerID), zap.String("action", cur.ActionID))
		if err := s.store.Delete(ctx, playerID, cur.AttemptID); err != nil && !errors.Is(err, ErrStale) {
			return res, fmt.Errorf("deleting orphan action: %w", err)
		}
		return res, nil
	}

	now := s.now()
	for i := 0; i < s.maxCatchUp && cur != nil && cur.Due(now); i++ {
		c, next, err := s.complete(ctx, def, *cur)
		if err != nil {
			return res, err
		}
		res.Completions = append(res.Completions, c)
		cur = next
	}
	if cur != nil {
		res.State = StateRunning
		res.Active = cur
	}
	return res, nil
}

// complete claims one elapsed window and grants its rewards.
//
// The next attempt's inputs are deducted before the claim so that a failed
// claim can refund them; rewards are granted only after the claim succeeds.
func (s *Scheduler) complete(ctx context.Context, def *Definition, cur ActiveAction) (Completion, *ActiveAction, error) {
	c := Completion{
		PlayerID:    cur.PlayerID,
		ActionID:    cur.ActionID,
		AttemptID:   cur.AttemptID,
		Attempt:     cur.Attempt,
		CompletedAt: cur.ExpectedCompletionAt,
	}

	var next *ActiveAction
	loop, reason := cur.willLoop()
	if loop {
		switch err := s.deductInputs(ctx, cur.PlayerID, def); {
		case err == nil:
			n := cur.next()
			next = &n
		case errors.Is(err, gameerr.ErrMissingInputs):
			reason = StopMissingInputs
		default:
			return c, nil, err
		}
	}
	c.StopReason = reason

	var claimErr error
	if next != nil {
		claimErr = s.store.Advance(ctx, cur.AttemptID, *next)
	} else {
		claimErr = s.store.Delete(ctx, cur.PlayerID, cur.AttemptID)
	}
	if claimErr != nil {
		if next != nil {
			s.refundInputs(ctx, cur.PlayerID, def)
		}
		return c, nil, fmt.Errorf("claiming attempt %s: %w", cur.AttemptID, claimErr)
	}
	c.Next = next

	c.Success = s.roller.Chance("action:"+def.ID, def.SuccessRate)
	if c.Success {
		if err := s.grantRewards(ctx, def, &c); err != nil {
			s.logger.Error("granting action rewards",
				observability.Player(cur.PlayerID),
				zap.String("action", def.ID),
				zap.String("attempt_id", cur.AttemptID.String()),
				zap.Error(err),
			)
			return c, next, err
		}
	}

	s.logger.Info("action completed",
		observability.Player(cur.PlayerID),
		zap.String("action", def.ID),
		zap.Int("attempt", cur.Attempt),
		zap.Bool("success", c.Success),
		zap.Int64("xp", c.XP),
		zap.Bool("looped", next != nil),
		zap.String("stop_reason", string(reason)),
	)
	if s.observer != nil {
		s.observer.ActionCompleted(ctx, c)
	}
	return c, next, nil
}

func (s *Scheduler) grantRewards(ctx context.Context, def *Definition, c *Completion) error {
	if def.XPReward > 0 {
		p, err := s.progress.GrantXP(ctx, c.PlayerID, def.Track, def.XPReward)
		if err != nil {
			return fmt.Errorf("granting xp: %w", err)
		}
		c.XP = def.XPReward
		c.Progress = p
	}
	for _, out := range def.OutputItems {
		qty := s.roller.Between("output:"+out.ItemID, out.MinQuantity, out.MaxQuantity)
		if qty <= 0 {
			continue
		}
		if err := s.inv.Grant(ctx, c.PlayerID, out.ItemID, qty); err != nil {
			return fmt.Errorf("granting %s: %w", out.ItemID, err)
		}
		c.Outputs = append(c.Outputs, inventory.Stack{ItemID: out.ItemID, Quantity: qty})
	}
	return nil
}

func (s *Scheduler) deductInputs(ctx context.Context, playerID int64, def *Definition) error {
	if len(def.InputItems) == 0 {
		return nil
	}
	if err := s.inv.Deduct(ctx, playerID, def.InputItems); err != nil {
		if errors.Is(err, gameerr.ErrMissingInputs) {
			return err
		}
		return fmt.Errorf("deducting inputs: %w", err)
	}
	return nil
}

func (s *Scheduler) refundInputs(ctx context.Context, playerID int64, def *Definition) {
	for _, in := range def.InputItems {
		if err := s.inv.Grant(ctx, playerID, in.ItemID, in.Quantity); err != nil {
			s.logger.Error("refunding input",
				observability.Player(playerID),
				zap.String("item", in.ItemID),
				zap.Int("quantity", in.Quantity),
				zap.Error(err),
			)
		}
	}
}

// SweepStats summarises one Sweep.
type SweepStats struct {
	Players     int
	Completions int
	Failures    int
}

// Sweep polls every player with an elapsed window, at most limit players and
// parallelism concurrent polls. A failing player is logged and does not stop
// the sweep.
//
// Precondition: parallelism >= 1.
func (s *Scheduler) Sweep(ctx context.Context, limit, parallelism int) (SweepStats, error) {
	due, err := s.store.ListDue(ctx, s.now(), limit)
	if err != nil {
		return SweepStats{}, fmt.Errorf("listing due actions: %w", err)
	}

	results := make([]PollResult, len(due))
	errs := make([]error, len(due))
	var g errgroup.Group
	g.SetLimit(max(1, parallelism))
	for i, a := range due {
		g.Go(func() error {
			results[i], errs[i] = s.Poll(ctx, a.PlayerID)
			return nil
		})
	}
	// Failures are per player and land in errs.
	g.Wait()

	stats := SweepStats{Players: len(due)}
	for i, a := range due {
		if errs[i] != nil {
			stats.Failures++
			s.logger.Warn("sweep poll failed", observability.Player(a.PlayerID), zap.Error(errs[i]))
			continue
		}
		stats.Completions += len(results[i].Completions)
	}
	return stats, ctx.Err()
}
