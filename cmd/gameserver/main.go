// Package main provides the engine server binary: it loads content, opens the
// configured stores and serves the engine over gRPC with a websocket push
// channel and a background action sweep.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/grindstone/internal/config"
	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/dice"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/game/progression"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/game/skill"
	"github.com/cory-johannsen/grindstone/internal/gameserver"
	"github.com/cory-johannsen/grindstone/internal/importer"
	"github.com/cory-johannsen/grindstone/internal/observability"
	"github.com/cory-johannsen/grindstone/internal/scripting"
	"github.com/cory-johannsen/grindstone/internal/server"
	"github.com/cory-johannsen/grindstone/internal/storage/postgres"
)

// stores bundles the persistence backends selected by storage.driver.
type stores struct {
	characters interface {
		engine.CharacterStore
		importer.CharacterCreator
	}
	equipment interface {
		engine.EquipmentStore
		importer.EquipmentSaver
	}
	inventory action.Inventory
	actions   action.Store
	statuses  condition.Store
	pool      *postgres.Pool
}

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	rosterPath := flag.String("roster", "", "optional roster YAML seeded at startup")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting engine server",
		zap.String("grpc_addr", cfg.GameServer.Addr()),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("mode", cfg.Server.Mode),
	)

	// Content
	contentStart := time.Now()
	actions, err := action.LoadActions(filepath.Join(cfg.Engine.ContentDir, "actions"))
	if err != nil {
		logger.Fatal("loading actions", zap.Error(err))
	}
	skills, err := skill.LoadSkills(filepath.Join(cfg.Engine.ContentDir, "skills"))
	if err != nil {
		logger.Fatal("loading skills", zap.Error(err))
	}
	itemDefs, err := inventory.LoadItems(filepath.Join(cfg.Engine.ContentDir, "items"))
	if err != nil {
		logger.Fatal("loading items", zap.Error(err))
	}
	items := inventory.NewRegistry()
	for _, d := range itemDefs {
		if err := items.RegisterItem(d); err != nil {
			logger.Fatal("registering item", zap.Error(err))
		}
	}
	for _, id := range actions.ItemIDs() {
		if _, ok := items.Item(id); !ok {
			logger.Fatal("action references unknown item", zap.String("item", id))
		}
	}
	curve, err := loadCurve(cfg.Engine, logger)
	if err != nil {
		logger.Fatal("loading xp curve", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("actions", len(actions.IDs())),
		zap.Int("skills", len(skills.IDs())),
		zap.Int("items", items.Len()),
		zap.Duration("elapsed", time.Since(contentStart)),
	)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("opening stores", zap.Error(err))
	}

	if *rosterPath != "" {
		roster, err := importer.LoadRoster(*rosterPath)
		if err != nil {
			logger.Fatal("loading roster", zap.Error(err))
		}
		imp := importer.New(st.characters, st.inventory, st.equipment, items, observability.Component(logger, "importer"))
		if _, err := imp.Run(ctx, roster); err != nil {
			logger.Fatal("seeding roster", zap.Error(err))
		}
	}

	// The hub needs the engine for connect snapshots and the engine needs the
	// hub as its publisher.
	var eng *engine.Service
	hub := gameserver.NewHub(cfg.Push.WriteTimeout, func(ctx context.Context, playerID int64) (engine.Event, error) {
		p, err := eng.GetPoolState(ctx, playerID)
		if err != nil {
			return engine.Event{}, err
		}
		return engine.Event{Type: engine.EventPoolSync, PlayerID: playerID, At: time.Now(), Pool: &p}, nil
	}, observability.Component(logger, "push"))

	eng = engine.New(engine.Deps{
		Characters: st.characters,
		Equipment:  st.equipment,
		Inventory:  st.inventory,
		Actions:    st.actions,
		Statuses:   st.statuses,
		Catalog:    actions,
		Items:      items,
		Skills:     skills,
		Curve:      curve,
		Roller:     dice.NewLoggedRoller(dice.NewCryptoSource(), observability.Component(logger, "dice")),
		Publisher:  hub,
		Rates:      regen.Rates{HPPercent: cfg.Engine.HPRegenPercent, SPPercent: cfg.Engine.SPRegenPercent},
		MaxCatchUp: cfg.Engine.MaxCatchUp,
		Logger:     observability.Component(logger, "engine"),
	})

	grpcServer := grpc.NewServer()
	gameserver.NewEngineServer(eng, observability.Component(logger, "grpc")).Register(grpcServer)

	lifecycle := server.NewLifecycle(logger)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.GameServer.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.GameServer.Addr(), err)
			}
			logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
			return grpcServer.Serve(lis)
		},
		StopFn: grpcServer.GracefulStop,
	})

	if cfg.Push.Enabled() {
		mux := http.NewServeMux()
		mux.Handle(cfg.Push.Path, hub)
		httpServer := &http.Server{Addr: cfg.Push.Addr(), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		lifecycle.Add("push", &server.FuncService{
			StartFn: func() error {
				logger.Info("push endpoint listening",
					zap.String("addr", cfg.Push.Addr()),
					zap.String("path", cfg.Push.Path),
				)
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			},
			StopFn: func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
				hub.Close()
			},
		})
	}

	if cfg.Server.Mode == "standalone" {
		sweep := gameserver.NewSweepLoop(eng.Scheduler(), cfg.Engine.SweepInterval,
			cfg.Engine.SweepBatch, cfg.Engine.SweepParallelism, observability.Component(logger, "sweep"))
		lifecycle.Add("sweep", server.ContextService(ctx, sweep.Run))
	}

	if st.pool != nil {
		pool := st.pool
		lifecycle.Add("postgres", server.ContextService(ctx, func(ctx context.Context) {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					pool.Close()
					return
				case <-ticker.C:
					if err := pool.Health(ctx, 5*time.Second); err != nil && ctx.Err() == nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			}
		}))
	}

	logger.Info("engine server initialized", zap.Duration("startup", time.Since(start)))

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// loadCurve evaluates the configured Lua curve script, or falls back to the
// built-in table.
func loadCurve(cfg config.EngineConfig, logger *zap.Logger) (progression.Curve, error) {
	if cfg.CurveScript == "" {
		return progression.NewDefaultCurve(cfg.MaxLevel), nil
	}
	return scripting.LoadCurve(cfg.CurveScript, cfg.MaxLevel, scripting.DefaultInstructionLimit, observability.Component(logger, "scripting"))
}

// openStores selects the memory or postgres backend.
func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case "memory":
		logger.Warn("using in-memory storage; state is lost on exit")
		return &stores{
			characters: character.NewMemoryStore(),
			equipment:  inventory.NewEquipmentBook(),
			inventory:  inventory.NewLedger(),
			actions:    action.NewMemoryStore(),
			statuses:   condition.NewMemoryStore(),
		}, nil
	case "postgres":
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		logger.Info("database connected", zap.Duration("elapsed", time.Since(dbStart)))
		db := pool.DB()
		return &stores{
			characters: postgres.NewCharacterRepository(db),
			equipment:  postgres.NewEquipmentRepository(db),
			inventory:  postgres.NewInventoryRepository(db),
			actions:    postgres.NewActionRepository(db),
			statuses:   postgres.NewStatusRepository(db),
			pool:       pool,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
