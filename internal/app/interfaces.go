package app

import (
	"canvasserver/internal/models"
	"context"
)

type CanvasService interface {
	AllocateID(ctx context.Context) (string, error)
	Load(ctx context.Context, canvasID string) (*models.Canvas, error)
	Save(ctx context.Context, canvasID string, projectID string, data *models.ScenePayload) error
	SaveThumbnail(ctx context.Context, canvasID string, png []byte) error
	Thumbnail(ctx context.Context, canvasID string) ([]byte, error)
}
