package canvasrepo

import (
	"canvasserver/internal/entities"
	"canvasserver/internal/models"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "canvasRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

// Upsert inserts the canvas row or replaces it by key. Last write wins.
func (r *repository) Upsert(ctx context.Context, canvas *models.Canvas) error {
	op := pkg + "Upsert"

	var data any

	if canvas.Data != nil {
		raw, err := json.Marshal(canvas.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		data = raw
	} else {
		data = nil
	}

	var projectID any
	if canvas.ProjectID != nil {
		projectID = *canvas.ProjectID
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO canvases (canvas_id, project_id, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (canvas_id) DO UPDATE SET
			project_id = EXCLUDED.project_id,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`,
		canvas.CanvasID, projectID, data, canvas.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) CanvasByID(ctx context.Context, canvasID string) (*models.Canvas, error) {
	op := pkg + "CanvasByID"

	rawCanvas := entities.Canvas{}

	err := r.db.GetContext(ctx, &rawCanvas,
		`SELECT
			c.canvas_id AS canvas_id,
			c.project_id AS project_id,
			c.data AS data,
			c.updated_at AS updated_at
			FROM canvases c
			WHERE c.canvas_id = $1`,
		canvasID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrCanvasNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	canvas := &models.Canvas{
		CanvasID:  rawCanvas.CanvasID,
		UpdatedAt: rawCanvas.UpdatedAt,
	}

	if rawCanvas.ProjectID.Valid {
		projectID := rawCanvas.ProjectID.String
		canvas.ProjectID = &projectID
	}

	if len(rawCanvas.Data) > 0 {
		payload := &models.ScenePayload{}
		if err := json.Unmarshal(rawCanvas.Data, payload); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		payload.Normalize()
		canvas.Data = payload
	}

	return canvas, nil
}
