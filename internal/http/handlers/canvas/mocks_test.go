package canvas

import (
	"canvasserver/internal/models"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockCanvasService struct {
	mock.Mock
}

func (m *mockCanvasService) Load(ctx context.Context, canvasID string) (*models.Canvas, error) {
	args := m.Called(ctx, canvasID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Canvas), args.Error(1)
}

func (m *mockCanvasService) Save(ctx context.Context, canvasID string, projectID string, data *models.ScenePayload) error {
	args := m.Called(ctx, canvasID, projectID, data)
	return args.Error(0)
}

func (m *mockCanvasService) AllocateID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockCanvasService) SaveThumbnail(ctx context.Context, canvasID string, png []byte) error {
	args := m.Called(ctx, canvasID, png)
	return args.Error(0)
}

func (m *mockCanvasService) Thumbnail(ctx context.Context, canvasID string) ([]byte, error) {
	args := m.Called(ctx, canvasID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
