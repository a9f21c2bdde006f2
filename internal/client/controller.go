package client

import (
	"canvasserver/internal/models"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

const pkg = "syncController/"

// State of one editing session. Transitions are one-way:
// Uninitialized → Loading → Hydrated → Editing.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateHydrated
	StateEditing
)

// InitialScene is the deferred handoff delivered to the widget once the
// stored document resolves. Err is set when the load failed; Data is still a
// well-formed scaffold so the session is never blocked.
type InitialScene struct {
	Data *models.ScenePayload
	Err  error
}

// Controller owns the save/load synchronization policy for one session: it
// resolves the initial scene, gates change events fired during widget
// hydration, refuses to clobber stored content with an empty first paint, and
// debounces writes back to the service.
type Controller struct {
	log *slog.Logger
	api CanvasAPI
	cfg SessionConfig

	debouncer *Debouncer

	mu           sync.Mutex
	state        State
	everNonEmpty bool
}

func NewController(log *slog.Logger, api CanvasAPI, cfg SessionConfig) *Controller {
	cfg.normalize()

	c := &Controller{
		log:   log,
		api:   api,
		cfg:   cfg,
		state: StateUninitialized,
	}
	c.debouncer = NewDebouncer(cfg.DebounceInterval, c.save)

	return c
}

// Start resolves the initial scene exactly once and returns a deferred
// handoff so the widget can render a loading state until it is ready.
// Without a configured canvas id there is nothing to fetch and the scaffold
// resolves immediately.
func (c *Controller) Start(ctx context.Context) <-chan InitialScene {
	op := pkg + "Start"

	log := c.log.With(slog.String("op", op))

	handoff := make(chan InitialScene, 1)

	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	if c.cfg.CanvasID == "" {
		handoff <- InitialScene{Data: models.EmptyScene()}
		return handoff
	}

	go func() {
		canvas, err := c.api.Load(ctx, c.cfg.CanvasID)
		if err != nil {
			log.Error("failed to load canvas, falling back to empty scene",
				slog.String("error", err.Error()), slog.String("canvas_id", c.cfg.CanvasID))
			handoff <- InitialScene{Data: models.EmptyScene(), Err: err}
			return
		}

		scene := canvas.Data
		if scene == nil {
			scene = models.EmptyScene()
		} else {
			scene.Normalize()
		}

		// Live-collaboration state starts fresh every session, never from storage.
		delete(scene.AppState, "collaborators")

		handoff <- InitialScene{Data: scene}
	}()

	return handoff
}

// MarkHydrated ungates change handling. The widget calls this once, after it
// has applied the initial scene from the handoff.
func (c *Controller) MarkHydrated() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateLoading || c.state == StateUninitialized {
		c.state = StateHydrated
	}
}

// OnChange is the widget's change callback. Events fired before hydration are
// the widget applying the loaded state to itself and are dropped. An empty
// scene is only persisted after a non-empty one has been observed this
// session, so a stray empty first paint can never clobber stored content —
// but a genuine deletion-to-empty still saves.
func (c *Controller) OnChange(elements []models.Element, appState map[string]any, files map[string]json.RawMessage) {
	c.mu.Lock()

	if c.state == StateUninitialized || c.state == StateLoading {
		c.mu.Unlock()
		return
	}

	payload := &models.ScenePayload{
		Elements: elements,
		AppState: appState,
		Files:    files,
	}
	payload.Normalize()

	if !payload.HasContent() && !c.everNonEmpty {
		c.mu.Unlock()
		return
	}

	if payload.HasContent() {
		c.everNonEmpty = true
	}

	c.state = StateEditing

	persistable := payload.Persistable()

	c.mu.Unlock()

	c.debouncer.Schedule(persistable)
}

// Close cancels any pending debounced save. An in-flight request is left to
// finish on its own.
func (c *Controller) Close() {
	c.debouncer.Stop()
}

// save is fire and forget: a failure is logged and implicitly recovered by
// the next edit, which carries the full latest payload anyway.
func (c *Controller) save(payload *models.ScenePayload) {
	op := pkg + "save"

	log := c.log.With(slog.String("op", op))

	if c.cfg.CanvasID == "" {
		return
	}

	if err := c.api.Save(context.Background(), c.cfg.CanvasID, c.cfg.ProjectID, payload); err != nil {
		log.Warn("canvas save failed", slog.String("error", err.Error()), slog.String("canvas_id", c.cfg.CanvasID))
	}
}
