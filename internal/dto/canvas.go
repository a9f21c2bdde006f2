package dto

import (
	"canvasserver/internal/models"
	"time"
)

type SaveCanvasRequest struct {
	CanvasID  string               `json:"canvasId"`
	ProjectID string               `json:"projectId,omitempty"`
	Data      *models.ScenePayload `json:"data,omitempty"`
}

type CanvasResponse struct {
	CanvasID  string               `json:"canvas_id"`
	ProjectID *string              `json:"project_id,omitempty"`
	Data      *models.ScenePayload `json:"data"`
	UpdatedAt *time.Time           `json:"updated_at,omitempty"`
}

type NewIDResponse struct {
	CanvasID string `json:"canvasId"`
}

type AckResponse struct {
	OK bool `json:"ok"`
}
