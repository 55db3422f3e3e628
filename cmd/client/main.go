package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aldoria/market-client/internal/catalog"
	"github.com/aldoria/market-client/internal/config"
	"github.com/aldoria/market-client/internal/gateway"
	"github.com/aldoria/market-client/internal/inventory"
	"github.com/aldoria/market-client/internal/listing"
	"github.com/aldoria/market-client/internal/market"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	cat, err := catalog.LoadCatalog(cfg.ItemsConfig)
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err, "path", cfg.ItemsConfig)
		os.Exit(1)
	}
	slog.Info("Item catalog loaded", "items", cat.Len())

	gw := gateway.NewClient(cfg.AuthorityURL, cfg.UserID, cfg.RequestTimeout)
	controller := market.NewController(
		gw,
		listing.NewStore(),
		inventory.NewProjector(cat, cfg.InventoryCapacity),
		market.Options{
			UserID:         cfg.UserID,
			RequestTimeout: cfg.RequestTimeout,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pushes, err := gw.Subscribe(ctx)
	if err != nil {
		slog.Error("Failed to open push stream", "error", err)
		os.Exit(1)
	}

	if err := controller.RefreshListings(ctx); err != nil {
		slog.Warn("Initial listings fetch failed", "error", err)
	}

	slog.Info("Market client running", "authority", cfg.AuthorityURL, "user_id", cfg.UserID)

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := controller.Shutdown(shutdownCtx); err != nil {
				slog.Error("Shutdown incomplete", "error", err)
				os.Exit(1)
			}
			slog.Info("Market client stopped")
			return

		case push, ok := <-pushes:
			if !ok {
				slog.Info("Push stream closed")
				return
			}
			controller.HandlePush(ctx, push)
		}
	}
}
