package client

import "time"

const (
	defaultDebounceInterval = time.Second
	defaultExportInterval   = 15 * time.Second
)

// SessionConfig carries the page-level parameters for one editing session.
// It is built once at startup (query parameters plus environment) and passed
// into the controller, never read from globals.
type SessionConfig struct {
	CanvasID  string
	ProjectID string
	APIBase   string
	AuthToken string

	DebounceInterval time.Duration
	ExportInterval   time.Duration
}

func (c *SessionConfig) normalize() {
	if c.DebounceInterval <= 0 {
		c.DebounceInterval = defaultDebounceInterval
	}
	if c.ExportInterval <= 0 {
		c.ExportInterval = defaultExportInterval
	}
}
