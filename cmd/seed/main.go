// Package main seeds characters from a roster into the configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cory-johannsen/grindstone/internal/config"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
	"github.com/cory-johannsen/grindstone/internal/importer"
	"github.com/cory-johannsen/grindstone/internal/observability"
	"github.com/cory-johannsen/grindstone/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	rosterPath := flag.String("roster", "", "path to roster YAML")
	flag.Parse()

	if *rosterPath == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -roster <file> [-config <file>]")
		os.Exit(1)
	}
	if err := run(*configPath, *rosterPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, rosterPath string) error {
	start := time.Now()
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	defs, err := inventory.LoadItems(filepath.Join(cfg.Engine.ContentDir, "items"))
	if err != nil {
		return err
	}
	items := inventory.NewRegistry()
	for _, d := range defs {
		if err := items.RegisterItem(d); err != nil {
			return err
		}
	}

	roster, err := importer.LoadRoster(rosterPath)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()
	db := pool.DB()

	imp := importer.New(
		postgres.NewCharacterRepository(db),
		postgres.NewInventoryRepository(db),
		postgres.NewEquipmentRepository(db),
		items,
		logger,
	)
	rep, err := imp.Run(ctx, roster)
	if err != nil {
		return err
	}
	for name, id := range rep.Created {
		fmt.Printf("created %s (id=%d)\n", name, id)
	}
	for _, name := range rep.Skipped {
		fmt.Printf("skipped %s (exists)\n", name)
	}
	fmt.Printf("seed complete in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
