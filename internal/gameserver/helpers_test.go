package gameserver_test

import (
	"context"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/skill"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/gameserver"
	"github.com/cory-johannsen/grindstone/internal/gameserver/enginev1"
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

type world struct {
	svc      *engine.Service
	ledger   *inventory.Ledger
	clock    *clock
	playerID int64
}

// newWorld builds an in-memory engine with one player (vitality 10,
// strength 10), a 60 second training action and a heal-over-time skill.
func newWorld(t *testing.T, pub engine.Publisher) *world {
	t.Helper()
	ctx := context.Background()

	actions, err := action.NewCatalog(&action.Definition{
		ID: "train", Name: "Training", Track: character.JobTrack,
		RequiredLevel: 1, ActionTimeSeconds: 60, SuccessRate: 1, XPReward: 10,
	})
	require.NoError(t, err)
	power := 20
	strength := stats.Strength
	skills, err := skill.NewCatalog(&skill.Definition{
		ID: "power_strike", Name: "Power Strike", Kind: skill.KindAttack,
		BasePower: &power, ScalingStat: &strength, ScalingRatio: 1, FlatBonus: 5,
		Hits: 2, StaminaCost: 10, Targeting: skill.TargetSingleEnemy,
	}, &skill.Definition{
		ID: "mend", Name: "Mend", Kind: skill.KindSupport,
		Hits: 1, StaminaCost: 5, Targeting: skill.TargetSelf,
		Effects: []skill.Effect{{Order: 1, Type: skill.EffectHOT, Value: 3, DurationTurns: 2, TickIntervalTurns: 1}},
	})
	require.NoError(t, err)
	items := inventory.NewRegistry()
	require.NoError(t, items.RegisterItem(&inventory.ItemDef{
		ID: "iron_helm", Name: "Iron Helm", Kind: inventory.KindEquipment, Slot: inventory.SlotHead,
		Bonus: stats.EquipmentBonus{VitalityBonus: stats.Int(2), HPBonus: stats.Int(10)},
	}))

	chars := character.NewMemoryStore()
	c, err := character.New("Ada", stats.CharacterStats{Vitality: 10, Strength: 10}, t0)
	require.NoError(t, err)
	c, err = chars.Create(ctx, c)
	require.NoError(t, err)

	w := &world{ledger: inventory.NewLedger(), clock: &clock{now: t0}, playerID: c.ID}
	w.svc = engine.New(engine.Deps{
		Characters: chars,
		Equipment:  inventory.NewEquipmentBook(),
		Inventory:  w.ledger,
		Actions:    action.NewMemoryStore(),
		Statuses:   condition.NewMemoryStore(),
		Catalog:    actions,
		Items:      items,
		Skills:     skills,
		Curve:      progression.NewDefaultCurve(99),
		Roller:     dice.NewLoggedRoller(dice.NewSeededSource(3), zap.NewNop()),
		Publisher:  pub,
		Rates:      regen.DefaultRates,
		Now:        w.clock.Now,
		Logger:     zap.NewNop(),
	})
	return w
}

// dialEngine serves eng over an in-memory listener and returns a client.
func dialEngine(t *testing.T, eng gameserver.Engine) enginev1.EngineServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	gameserver.NewEngineServer(eng, zaptest.NewLogger(t)).Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return enginev1.NewEngineServiceClient(conn)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
