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

func NewID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ia IDAllocator) {
	op := pkg + "NewID"

	log = log.With(slog.String("op", op))

	canvasID, err := ia.AllocateID(ctx)
	if err != nil {
		log.Error("failed to allocate canvas id", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewIDResponse{CanvasID: canvasID}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
