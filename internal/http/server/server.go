package server

import (
	"canvasserver/internal/config"
	"canvasserver/internal/http/handlers/canvas"
	"canvasserver/internal/http/handlers/health"
	"canvasserver/internal/http/middleware"
	"canvasserver/internal/models"
	errutils "canvasserver/internal/utils/http_errors"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	canvasService CanvasService,
	authSecret string,
	allowedOrigins []string,
) error {
	r := NewRouter(log, canvasService, authSecret)

	// CORS wraps the whole router so preflight requests are answered before
	// routing or auth can reject them.
	handler := middleware.CORS(allowedOrigins)(r)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      handler,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func NewRouter(log *slog.Logger, canvasService CanvasService, authSecret string) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	// GET health — the liveness probe stays outside the auth gate.
	r.HandleFunc("/health", health.Get).Methods(http.MethodGet)

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, authSecret))

	// POST new-id
	protected.HandleFunc("/new-id", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		canvas.NewID(ctx, log, w, r, canvasService)
	}).Methods(http.MethodPost)

	// GET canvas
	protected.HandleFunc("/canvas", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		canvas.Get(ctx, log, w, r, canvasService)
	}).Methods(http.MethodGet)

	// PUT canvas
	protected.HandleFunc("/canvas", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		canvas.Put(ctx, log, w, r, canvasService)
	}).Methods(http.MethodPut)

	// POST canvas thumbnail
	protected.HandleFunc("/canvas/thumbnail", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		canvas.UploadThumbnail(ctx, log, w, r, canvasService)
	}).Methods(http.MethodPost)

	// GET canvas thumbnail
	protected.HandleFunc("/canvas/thumbnail", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		canvas.GetThumbnail(ctx, log, w, r, canvasService)
	}).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errutils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})

	return r
}
