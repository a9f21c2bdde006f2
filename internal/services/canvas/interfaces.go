package canvasservice

import (
	"canvasserver/internal/models"
	"context"
)

type CanvasRepository interface {
	Upsert(ctx context.Context, canvas *models.Canvas) error
	CanvasByID(ctx context.Context, canvasID string) (*models.Canvas, error)
}

type Cache interface {
	Get(ctx context.Context, canvasID string) (string, error)
	Set(ctx context.Context, canvasID string, canvasJSON string) error
	Del(ctx context.Context, canvasIDs ...string) error
}

type ThumbnailStorage interface {
	SaveThumbnail(canvasID string, png []byte) error
	LoadThumbnail(canvasID string) ([]byte, error)
}
