package action_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t0.Add(d)
}

type fakeProgress struct {
	mu    sync.Mutex
	curve progression.Curve
	xp    map[string]int64
	fail  map[int64]bool
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{curve: progression.NewDefaultCurve(99), xp: map[string]int64{}, fail: map[int64]bool{}}
}

func key(playerID int64, track string) string { return fmt.Sprintf("%d/%s", playerID, track) }

func (p *fakeProgress) Level(_ context.Context, playerID int64, track string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.curve.LevelFor(p.xp[key(playerID, track)]), nil
}

func (p *fakeProgress) GrantXP(_ context.Context, playerID int64, track string, xp int64) (progression.Progress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail[playerID] {
		return progression.Progress{}, errors.New("progress store unavailable")
	}
	p.xp[key(playerID, track)] += xp
	return progression.Describe(p.curve, p.xp[key(playerID, track)]), nil
}

func (p *fakeProgress) FailFor(playerID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail[playerID] = true
}

func (p *fakeProgress) XP(playerID int64, track string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.xp[key(playerID, track)]
}

type recorder struct {
	mu        sync.Mutex
	completed []action.Completion
	cancelled []action.ActiveAction
}

func (r *recorder) ActionCompleted(_ context.Context, c action.Completion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, c)
}

func (r *recorder) ActionCancelled(_ context.Context, a action.ActiveAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, a)
}

type harness struct {
	sched    *action.Scheduler
	store    *action.MemoryStore
	ledger   *inventory.Ledger
	progress *fakeProgress
	clock    *clock
	events   *recorder
}

func training() *action.Definition {
	return &action.Definition{
		ID: "train", Name: "Training", Track: "job",
		RequiredLevel: 1, ActionTimeSeconds: 60, SuccessRate: 1.0, XPReward: 10,
	}
}

func smelting() *action.Definition {
	return &action.Definition{
		ID: "smelt", Name: "Smelt Bronze", Track: "smithing",
		RequiredLevel: 1, ActionTimeSeconds: 30, SuccessRate: 1.0, XPReward: 5,
		InputItems:  []inventory.Stack{{ItemID: "copper_ore", Quantity: 1}, {ItemID: "tin_ore", Quantity: 1}},
		OutputItems: []action.Output{{ItemID: "bronze_bar", MinQuantity: 1, MaxQuantity: 3}},
	}
}

func gated() *action.Definition {
	return &action.Definition{
		ID: "mithril", Name: "Mine Mithril", Track: "mining",
		RequiredLevel: 3, ActionTimeSeconds: 90, SuccessRate: 0.5, XPReward: 40,
	}
}

func doomed() *action.Definition {
	return &action.Definition{
		ID: "doomed", Name: "Doomed", Track: "job",
		RequiredLevel: 1, ActionTimeSeconds: 10, SuccessRate: 0, XPReward: 10,
		OutputItems: []action.Output{{ItemID: "gem", MinQuantity: 1, MaxQuantity: 1}},
	}
}

func newHarness(t *testing.T, cfg action.Config, src dice.Source) *harness {
	t.Helper()
	cat, err := action.NewCatalog(training(), smelting(), gated(), doomed())
	require.NoError(t, err)
	h := &harness{
		store:    action.NewMemoryStore(),
		ledger:   inventory.NewLedger(),
		progress: newFakeProgress(),
		clock:    &clock{now: t0},
		events:   &recorder{},
	}
	if src == nil {
		src = dice.NewSeededSource(1)
	}
	cfg.Now = h.clock.Now
	h.sched = action.NewScheduler(h.store, cat, h.ledger, h.progress,
		dice.NewLoggedRoller(src, zap.NewNop()), cfg, zap.NewNop())
	h.sched.SetObserver(h.events)
	return h
}
