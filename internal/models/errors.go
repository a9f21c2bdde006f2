package models

import "errors"

var (
	ErrNoRows           = errors.New("no rows")
	ErrInternal         = errors.New("internal server error")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrMissingCanvasID  = errors.New("canvasId required")
	ErrCanvasNotFound   = errors.New("canvas not found")
	ErrUnauthorized     = errors.New("Unauthorized")
	ErrInvalidParams    = errors.New("invalid params")
)
