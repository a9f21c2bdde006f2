package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Exporter periodically captures a PNG snapshot of the live scene and uploads
// it as the canvas thumbnail. Strictly best effort and read-only against the
// widget: it shares nothing with the save path.
type Exporter struct {
	log   *slog.Logger
	api   CanvasAPI
	scene SceneExporter
	cfg   SessionConfig
	cron  *cron.Cron
}

func NewExporter(log *slog.Logger, api CanvasAPI, scene SceneExporter, cfg SessionConfig) *Exporter {
	cfg.normalize()

	return &Exporter{
		log:   log,
		api:   api,
		scene: scene,
		cfg:   cfg,
		cron:  cron.New(),
	}
}

func (e *Exporter) Start() error {
	op := pkg + "ExporterStart"

	spec := fmt.Sprintf("@every %s", e.cfg.ExportInterval)

	if _, err := e.cron.AddFunc(spec, e.export); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	e.cron.Start()

	return nil
}

func (e *Exporter) Stop() {
	ctx := e.cron.Stop()
	<-ctx.Done()
}

func (e *Exporter) export() {
	op := pkg + "export"

	log := e.log.With(slog.String("op", op))

	if e.cfg.CanvasID == "" {
		return
	}

	png, err := e.scene.ExportPNG(context.Background())
	if err != nil {
		log.Debug("scene export failed", slog.String("error", err.Error()))
		return
	}

	if len(png) == 0 {
		return
	}

	if err := e.api.UploadThumbnail(context.Background(), e.cfg.CanvasID, png); err != nil {
		log.Warn("thumbnail upload failed", slog.String("error", err.Error()), slog.String("canvas_id", e.cfg.CanvasID))
	}
}
