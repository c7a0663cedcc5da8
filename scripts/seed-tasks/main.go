package main

import (
	"context"
	"fmt"
	"os"

	"chat-task-manager/config"
	"chat-task-manager/internal/storage"
	"chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-tasks/main.go <path/to/seed.yaml> [user_id]")
		fmt.Println("Example: go run scripts/seed-tasks/main.go internal/task/repository/testdata/seed.yaml demo")
		os.Exit(1)
	}
	seedPath := os.Args[1]
	user := ""
	if len(os.Args) > 2 {
		user = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver == config.StoreDriverMemory {
		fmt.Println("store.driver is memory; seeding it would be lost on exit")
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Seed only what the command line names, not store.seed_file.
	storeCfg := cfg.Store
	storeCfg.SeedFile = ""
	stores, err := storage.Open(ctx, storeCfg, user, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open store: %v", err)
	}
	defer stores.Close()

	logger.Infof(ctx, "Seeding %s into %s...", seedPath, cfg.Store.SQLitePath)

	n, err := repository.LoadSeedFile(ctx, stores.Tasks, seedPath, user)
	if err != nil {
		logger.Fatalf(ctx, "Failed to seed: %v", err)
	}

	logger.Infof(ctx, "Seed complete! %d tasks stored.", n)
}
