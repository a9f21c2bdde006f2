package canvas

import (
	"canvasserver/internal/dto"
	"canvasserver/internal/models"
	errutils "canvasserver/internal/utils/http_errors"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cp CanvasProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	canvasID := r.URL.Query().Get("canvasId")
	if canvasID == "" {
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrMissingCanvasID.Error())
		return
	}

	canvas, err := cp.Load(ctx, canvasID)
	if err != nil {
		log.Error("failed to load canvas", slog.String("error", err.Error()), slog.String("canvas_id", canvasID))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.CanvasResponse{
		CanvasID:  canvas.CanvasID,
		ProjectID: canvas.ProjectID,
		Data:      canvas.Data,
	}

	if !canvas.UpdatedAt.IsZero() {
		updatedAt := canvas.UpdatedAt
		response.UpdatedAt = &updatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
