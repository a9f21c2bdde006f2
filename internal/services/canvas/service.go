package canvasservice

import (
	"canvasserver/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "canvasService/"

type CanvasService struct {
	log        *slog.Logger
	canvasRepo CanvasRepository
	cache      Cache
	thumbnails ThumbnailStorage
}

func New(
	log *slog.Logger,
	canvasRepo CanvasRepository,
	cache Cache,
	thumbnails ThumbnailStorage,
) *CanvasService {
	return &CanvasService{
		log:        log,
		canvasRepo: canvasRepo,
		cache:      cache,
		thumbnails: thumbnails,
	}
}

// AllocateID generates a fresh canvas identifier and pre-creates an empty row
// for it, so external automations can hand out editor links immediately.
func (cs *CanvasService) AllocateID(ctx context.Context) (string, error) {
	op := pkg + "AllocateID"

	log := cs.log.With(slog.String("op", op))

	canvas := &models.Canvas{
		CanvasID:  uuid.NewV4().String(),
		Data:      models.EmptyScene(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := cs.canvasRepo.Upsert(ctx, canvas); err != nil {
		log.Error("failed to pre-create canvas", slog.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("canvas id allocated", slog.String("canvas_id", canvas.CanvasID))

	return canvas.CanvasID, nil
}

// Load returns the stored canvas, or an in-memory empty scaffold when no row
// exists. The scaffold is synthesized, never persisted.
func (cs *CanvasService) Load(ctx context.Context, canvasID string) (*models.Canvas, error) {
	op := pkg + "Load"

	log := cs.log.With(slog.String("op", op))

	if canvasID == "" {
		return nil, fmt.Errorf("%s: %w", op, models.ErrMissingCanvasID)
	}

	if cached, err := cs.cache.Get(ctx, canvasID); err != nil {
		log.Warn("cache read failed", slog.String("error", err.Error()))
	} else if cached != "" {
		canvas := &models.Canvas{}
		if err := json.Unmarshal([]byte(cached), canvas); err == nil {
			return canvas, nil
		}
		log.Warn("invalid canvas JSON in cache", slog.String("canvas_id", canvasID))
	}

	canvas, err := cs.canvasRepo.CanvasByID(ctx, canvasID)
	if err != nil {
		if errors.Is(err, models.ErrCanvasNotFound) {
			return &models.Canvas{
				CanvasID: canvasID,
				Data:     models.EmptyScene(),
			}, nil
		}
		log.Error("failed to load canvas", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	cs.refreshCache(ctx, log, canvas)

	return canvas, nil
}

// Save upserts the full payload for the canvas. Replaying the same save only
// advances updated_at.
func (cs *CanvasService) Save(ctx context.Context, canvasID string, projectID string, data *models.ScenePayload) error {
	op := pkg + "Save"

	log := cs.log.With(slog.String("op", op))

	if canvasID == "" {
		return fmt.Errorf("%s: %w", op, models.ErrMissingCanvasID)
	}

	if data == nil {
		data = models.EmptyScene()
	} else {
		data.Normalize()
	}

	canvas := &models.Canvas{
		CanvasID:  canvasID,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}

	if projectID != "" {
		canvas.ProjectID = &projectID
	}

	if err := cs.canvasRepo.Upsert(ctx, canvas); err != nil {
		log.Error("failed to save canvas", slog.String("error", err.Error()), slog.String("canvas_id", canvasID))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	cs.refreshCache(ctx, log, canvas)

	log.Debug("canvas saved", slog.String("canvas_id", canvasID), slog.Int("elements", len(data.Elements)))

	return nil
}

func (cs *CanvasService) SaveThumbnail(ctx context.Context, canvasID string, png []byte) error {
	op := pkg + "SaveThumbnail"

	log := cs.log.With(slog.String("op", op))

	if canvasID == "" {
		return fmt.Errorf("%s: %w", op, models.ErrMissingCanvasID)
	}

	if len(png) == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrInvalidParams)
	}

	if err := cs.thumbnails.SaveThumbnail(canvasID, png); err != nil {
		log.Error("failed to save thumbnail", slog.String("error", err.Error()), slog.String("canvas_id", canvasID))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return nil
}

func (cs *CanvasService) Thumbnail(ctx context.Context, canvasID string) ([]byte, error) {
	op := pkg + "Thumbnail"

	log := cs.log.With(slog.String("op", op))

	if canvasID == "" {
		return nil, fmt.Errorf("%s: %w", op, models.ErrMissingCanvasID)
	}

	png, err := cs.thumbnails.LoadThumbnail(canvasID)
	if err != nil {
		log.Warn("failed to load thumbnail", slog.String("error", err.Error()), slog.String("canvas_id", canvasID))
		return nil, fmt.Errorf("%s: %w", op, models.ErrCanvasNotFound)
	}

	return png, nil
}

// refreshCache is best effort: a cache failure degrades to the DB path.
func (cs *CanvasService) refreshCache(ctx context.Context, log *slog.Logger, canvas *models.Canvas) {
	canvasJSON, err := json.Marshal(canvas)
	if err != nil {
		log.Warn("failed to marshal canvas for cache", slog.String("error", err.Error()))
		return
	}

	if err := cs.cache.Set(ctx, canvas.CanvasID, string(canvasJSON)); err != nil {
		log.Warn("failed to refresh canvas cache", slog.String("error", err.Error()))
	}
}
