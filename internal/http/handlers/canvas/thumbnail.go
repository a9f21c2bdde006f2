package canvas

import (
	"canvasserver/internal/dto"
	"canvasserver/internal/models"
	errutils "canvasserver/internal/utils/http_errors"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const maxThumbnailBytes = 10 << 20

func UploadThumbnail(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ts ThumbnailService) {
	op := pkg + "UploadThumbnail"

	log = log.With(slog.String("op", op))

	canvasID := r.URL.Query().Get("canvasId")
	if canvasID == "" {
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrMissingCanvasID.Error())
		return
	}

	png, err := io.ReadAll(io.LimitReader(r.Body, maxThumbnailBytes))
	if err != nil {
		log.Warn("failed to read thumbnail body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	if len(png) == 0 {
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	if err := ts.SaveThumbnail(ctx, canvasID, png); err != nil {
		log.Error("failed to save thumbnail", slog.String("error", err.Error()), slog.String("canvas_id", canvasID))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.AckResponse{OK: true}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetThumbnail(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ts ThumbnailService) {
	op := pkg + "GetThumbnail"

	log = log.With(slog.String("op", op))

	canvasID := r.URL.Query().Get("canvasId")
	if canvasID == "" {
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrMissingCanvasID.Error())
		return
	}

	png, err := ts.Thumbnail(ctx, canvasID)
	if err != nil {
		if errors.Is(err, models.ErrCanvasNotFound) {
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrCanvasNotFound.Error())
			return
		}
		log.Error("failed to load thumbnail", slog.String("error", err.Error()), slog.String("canvas_id", canvasID))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		log.Error("failed to write thumbnail response", slog.String("error", err.Error()))
	}
}
