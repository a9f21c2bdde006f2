package client

import (
	"canvasserver/internal/models"
	"context"
)

type CanvasAPI interface {
	Load(ctx context.Context, canvasID string) (*models.Canvas, error)
	Save(ctx context.Context, canvasID string, projectID string, data *models.ScenePayload) error
	UploadThumbnail(ctx context.Context, canvasID string, png []byte) error
}

// SceneExporter is the read-only snapshot surface of the drawing widget.
type SceneExporter interface {
	ExportPNG(ctx context.Context) ([]byte, error)
}
