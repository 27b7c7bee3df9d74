package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/enesocakci/portfolio-backend/config"
	"github.com/enesocakci/portfolio-backend/internal/bootstrap"
	"github.com/enesocakci/portfolio-backend/internal/platform/firebase"
	projrepo "github.com/enesocakci/portfolio-backend/internal/projects/repository"
	"github.com/enesocakci/portfolio-backend/internal/reconcile"
)

const serviceName = "portfolio-backend"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fb, err := firebase.Initialize(ctx, &cfg.Firebase)
	if err != nil {
		slog.Error("failed to initialize Firebase", "error", err)
		os.Exit(1)
	}
	defer fb.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer redisClient.Close()
	}

	reconciler := reconcile.New(projrepo.NewProjectRepository(fb.Firestore))
	scheduler, err := reconciler.Start(cfg.Reconcile.Schedule)
	if err != nil {
		slog.Error("failed to start reconciliation scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORS:        cfg.CORS,
		Firestore:   fb.Firestore,
		Users:       fb.Auth,
		Redis:       redisClient,
	})

	slog.Info("server starting", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
