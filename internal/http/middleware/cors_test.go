package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS_OpenByDefault(t *testing.T) {
	t.Parallel()

	var called bool
	handler := CORS(nil)(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/canvas", nil)
	req.Header.Set("Origin", "https://anything.example")

	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowlistedOrigin(t *testing.T) {
	t.Parallel()

	var called bool
	handler := CORS([]string{"https://app.example"})(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/canvas", nil)
	req.Header.Set("Origin", "https://app.example")

	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, "https://app.example", w.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnlistedOrigin_GetsNoAllowHeader(t *testing.T) {
	t.Parallel()

	var called bool
	handler := CORS([]string{"https://app.example"})(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/canvas", nil)
	req.Header.Set("Origin", "https://evil.example")

	handler.ServeHTTP(w, req)

	// The request still reaches the handler; the browser enforces the block.
	assert.True(t, called)
	assert.Empty(t, w.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight_ShortCircuits(t *testing.T) {
	t.Parallel()

	var called bool
	handler := CORS(nil)(okHandler(&called))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/canvas", nil)
	req.Header.Set("Origin", "https://app.example")

	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}
