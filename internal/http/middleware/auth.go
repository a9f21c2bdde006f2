package middleware

import (
	"canvasserver/internal/models"
	errutils "canvasserver/internal/utils/http_errors"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// Auth gates requests behind a configured shared secret presented as a bearer
// token. An empty secret disables the gate entirely.
func Auth(log *slog.Logger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Auth"

			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(slog.String("op", op))

			authHeader := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authHeader, "Bearer ")

			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				log.Warn("rejected request with bad credentials", slog.String("path", r.URL.Path))
				errutils.WriteJSONError(w, http.StatusUnauthorized, models.ErrUnauthorized.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
