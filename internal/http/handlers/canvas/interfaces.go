package canvas

import (
	"canvasserver/internal/models"
	"context"
)

const pkg = "canvasHandlers/"

type CanvasProvider interface {
	Load(ctx context.Context, canvasID string) (*models.Canvas, error)
}

type CanvasSaver interface {
	Save(ctx context.Context, canvasID string, projectID string, data *models.ScenePayload) error
}

type IDAllocator interface {
	AllocateID(ctx context.Context) (string, error)
}

type ThumbnailService interface {
	SaveThumbnail(ctx context.Context, canvasID string, png []byte) error
	Thumbnail(ctx context.Context, canvasID string) ([]byte, error)
}
