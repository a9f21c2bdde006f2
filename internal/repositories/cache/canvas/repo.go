package cachecanvasrepo

import (
	cacherepo "canvasserver/internal/repositories/cache"
	"context"
	"fmt"
	"time"
)

type repository struct {
	cache     cacherepo.Cache
	canvasTTL time.Duration
}

func New(cache cacherepo.Cache, canvasTTL time.Duration) *repository {
	return &repository{
		cache:     cache,
		canvasTTL: canvasTTL,
	}
}

func key(canvasID string) string {
	return fmt.Sprintf("canvas:%s", canvasID)
}

// Get returns the cached canvas row JSON, or "" on a miss.
func (r *repository) Get(ctx context.Context, canvasID string) (string, error) {
	canvasJSON, err := r.cache.Get(ctx, key(canvasID)).Result()
	if err != nil {
		return "", err
	}

	return canvasJSON, nil
}

func (r *repository) Set(ctx context.Context, canvasID string, canvasJSON string) error {
	return r.cache.Set(ctx, key(canvasID), canvasJSON, r.canvasTTL).Err()
}

func (r *repository) Del(ctx context.Context, canvasIDs ...string) error {
	keys := make([]string, 0, len(canvasIDs))
	for _, id := range canvasIDs {
		keys = append(keys, key(id))
	}
	return r.cache.Del(ctx, keys...).Err()
}
