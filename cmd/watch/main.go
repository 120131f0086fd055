// Package main provides a terminal client that follows one player's action
// progress and interpolated HP/SP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cory-johannsen/grindstone/internal/config"
	"github.com/cory-johannsen/grindstone/internal/gameserver/enginev1"
	"github.com/cory-johannsen/grindstone/internal/observability"
	"github.com/cory-johannsen/grindstone/internal/watch"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	playerID := flag.Int64("player", 0, "player id to follow")
	refresh := flag.Duration("refresh", 250*time.Millisecond, "status line redraw interval")
	color := flag.Bool("color", true, "use ANSI colors")
	flag.Parse()

	if *playerID <= 0 {
		fmt.Fprintln(os.Stderr, "usage: watch -player <id> [-config <file>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.Push.Enabled() {
		logger.Fatal("push endpoint disabled in config; nothing to follow")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(cfg.GameServer.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("connecting to engine", zap.Error(err))
	}
	defer conn.Close()

	w := watch.New(*playerID, os.Stdout, watch.Options{Tolerance: cfg.Engine.RegenTolerance, Color: *color}, logger)
	if err := w.Seed(ctx, enginev1.NewEngineServiceClient(conn)); err != nil {
		logger.Fatal("seeding watcher", zap.Error(err))
	}

	push, err := watch.Dial(ctx, fmt.Sprintf("ws://%s%s", cfg.Push.Addr(), cfg.Push.Path), *playerID)
	if err != nil {
		logger.Fatal("opening push channel", zap.Error(err))
	}
	if err := w.Run(ctx, push, *refresh); err != nil {
		logger.Fatal("watch stopped", zap.Error(err))
	}
	fmt.Println()
}
