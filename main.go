package main

import (
	"context"

	auction "auction-ledger/internal/auctionEngine"
	"auction-ledger/internal/config"
	"auction-ledger/internal/dispatch"
	"auction-ledger/internal/ledger"
	"auction-ledger/internal/server"
	"auction-ledger/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("Failed to open ledger store", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	engine := auction.NewEngine(store)

	if cfg.SeedDemo {
		if err := engine.InitLedger(ctx); err != nil {
			utils.Fatal("Failed to seed demo ledger", map[string]any{"error": err.Error()})
		}
		utils.Info("Demo ledger seeded", nil)
	}

	dispatcher := dispatch.NewDispatcher(engine)
	router := server.SetupRouter(engine, dispatcher)

	utils.Info("Starting auction ledger server", map[string]any{
		"port": cfg.Port,
		"env":  cfg.Env,
	})
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// openStore picks the ledger backend: Postgres when DB_SOURCE is set,
// otherwise the in-memory store.
func openStore(ctx context.Context, cfg *config.Config) (ledger.Store, func(), error) {
	if cfg.DBSource == "" {
		utils.Info("Using in-memory ledger store", nil)
		return ledger.NewMemoryStore(), func() {}, nil
	}

	store, err := ledger.NewPostgresStore(ctx, cfg.DBSource)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	utils.Info("Using postgres ledger store", nil)
	return store, store.Close, nil
}
