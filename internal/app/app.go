package app

import (
	"canvasserver/internal/cache/redis"
	"canvasserver/internal/config"
	"canvasserver/internal/dbs/postgres"
	cachecanvasrepo "canvasserver/internal/repositories/cache/canvas"
	canvasrepo "canvasserver/internal/repositories/db/canvas"
	thumbnailrepo "canvasserver/internal/repositories/storage/thumbnail"
	canvasservice "canvasserver/internal/services/canvas"
	"context"
	"fmt"
	"log/slog"
)

type App struct {
	CanvasService CanvasService
}

func NewApp(ctx context.Context, log *slog.Logger, dbCfg config.DB, cacheCfg config.Cache, thumbnailsCfg config.Thumbnails) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	canvasRepo := canvasrepo.NewRepository(db)

	canvasCacheRepo := cachecanvasrepo.New(cache, cacheCfg.CanvasTTL)

	thumbnailStorage := thumbnailrepo.NewRepository(thumbnailsCfg.Path)

	canvasService := canvasservice.New(log, canvasRepo, canvasCacheRepo, thumbnailStorage)

	return &App{
		CanvasService: canvasService,
	}, nil
}
