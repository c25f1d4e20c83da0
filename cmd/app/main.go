package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/config"
	"github.com/osse101/BackpackBot_Go/internal/identity"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/schema"
	"github.com/osse101/BackpackBot_Go/internal/server"
	"github.com/osse101/BackpackBot_Go/internal/validation"
	"github.com/osse101/BackpackBot_Go/internal/webapi"
)

const (
	shutdownTimeout = 10 * time.Second
	warmupTimeout   = 2 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, warning := range warnings {
		logger.Warn("Configuration warning", "warning", warning)
	}

	client := webapi.NewClient(cfg.SteamAPIBaseURL, cfg.SteamAPIKey, cfg.AppID)
	if cfg.StrictValidation {
		validator, err := validation.NewValidator()
		if err != nil {
			logger.Error("Failed to compile payload schemas", "error", err)
			os.Exit(1)
		}
		client.SetValidator(validator)
		logger.Info("Strict payload validation enabled")
	}

	schemas := schema.NewProvider(client, cfg.AppID, schema.CacheConfig{
		Size: cfg.SchemaCacheSize,
		TTL:  cfg.SchemaCacheTTL,
	})
	resolver := identity.NewResolver(client)
	backpacks := backpack.NewService(client, schemas, resolver)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, cfg.Language, schemas, backpacks)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Warm the catalog cache so the first request does not pay for the
	// full schema download.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
		defer cancel()
		if _, err := schemas.Catalog(ctx, cfg.Language); err != nil {
			logger.Warn("Catalog warmup failed", "language", cfg.Language, "error", err)
		} else {
			logger.Info("Catalog warmed", "language", cfg.Language)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("Shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			logger.Error("Server forced to shutdown", "error", err)
			os.Exit(1)
		}
		logger.Info("Server stopped")
	}
}
