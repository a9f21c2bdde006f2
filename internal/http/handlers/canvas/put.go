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

func Put(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cs CanvasSaver) {
	op := pkg + "Put"

	log = log.With(slog.String("op", op))

	var req dto.SaveCanvasRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	if req.CanvasID == "" {
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrMissingCanvasID.Error())
		return
	}

	if err := cs.Save(ctx, req.CanvasID, req.ProjectID, req.Data); err != nil {
		log.Error("failed to save canvas", slog.String("error", err.Error()), slog.String("canvas_id", req.CanvasID))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.AckResponse{OK: true}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
