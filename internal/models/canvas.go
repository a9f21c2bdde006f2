package models

import "time"

type Canvas struct {
	CanvasID  string        `json:"canvas_id"`
	ProjectID *string       `json:"project_id"`
	Data      *ScenePayload `json:"data"`
	UpdatedAt time.Time     `json:"updated_at"`
}
