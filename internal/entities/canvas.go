package entities

import (
	"database/sql"
	"time"
)

type Canvas struct {
	CanvasID  string         `db:"canvas_id"`
	ProjectID sql.NullString `db:"project_id"`
	Data      []byte         `db:"data"`
	UpdatedAt time.Time      `db:"updated_at"`
}
