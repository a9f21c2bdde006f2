package client

import (
	"canvasserver/internal/models"
	"sync"
	"time"
)

// Debouncer coalesces a burst of payloads into a single trailing call after a
// quiet interval. Schedule supersedes any pending call, so only the newest
// payload in a burst is delivered.
type Debouncer struct {
	interval time.Duration
	fn       func(*models.ScenePayload)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(interval time.Duration, fn func(*models.ScenePayload)) *Debouncer {
	return &Debouncer{
		interval: interval,
		fn:       fn,
	}
}

func (d *Debouncer) Schedule(payload *models.ScenePayload) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.fn(payload)
	})
}

// Stop cancels any pending call. An already in-flight call is not interrupted.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
