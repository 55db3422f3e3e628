package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aldoria/market-client/internal/authority"
	"github.com/aldoria/market-client/internal/catalog"
	"github.com/aldoria/market-client/internal/config"
	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat,
		"market-authority", "dev", cfg.Environment,
		cfg.Environment == "dev" || cfg.Environment == "development",
	)
	logger.InitLogger(loggerConfig)

	cat, err := catalog.LoadCatalog(cfg.ItemsConfig)
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err, "path", cfg.ItemsConfig)
		os.Exit(1)
	}

	state := authority.NewState(cat)
	if cfg.UserID != "" {
		state.SeedPlayer(cfg.UserID, cfg.UserName, authority.StartingSilver, domain.Inventory{})
	}

	hub := authority.NewHub()
	hub.Start()

	srv := authority.NewServer(cfg.Port, state, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown incomplete", "error", err)
		}
	}()

	slog.Info("Market authority listening", "port", cfg.Port, "items", cat.Len())
	if err := srv.Start(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Market authority stopped")
}
