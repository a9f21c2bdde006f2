package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_NoSecretConfigured_PassesThrough(t *testing.T) {
	t.Parallel()

	var called bool
	handler := Auth(slog.Default(), "")(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/canvas", nil)

	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestAuth_ValidToken(t *testing.T) {
	t.Parallel()

	var called bool
	handler := Auth(slog.Default(), "s3cret")(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/canvas", nil)
	req.Header.Set("Authorization", "Bearer s3cret")

	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()

	var called bool
	handler := Auth(slog.Default(), "s3cret")(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/canvas", nil)

	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestAuth_WrongToken(t *testing.T) {
	t.Parallel()

	var called bool
	handler := Auth(slog.Default(), "s3cret")(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/canvas", nil)
	req.Header.Set("Authorization", "Bearer wrong")

	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
