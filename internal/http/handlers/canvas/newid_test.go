package canvas

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/new-id", nil)
	ctx := req.Context()

	mockCS := new(mockCanvasService)
	mockCS.On("AllocateID", ctx).Return("7f9c0a2e-5b1d-4c3f-9e8a-000000000001", nil)

	NewID(ctx, slog.Default(), w, req, mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "7f9c0a2e-5b1d-4c3f-9e8a-000000000001", parsed["canvasId"])

	mockCS.AssertExpectations(t)
}

func TestNewID_Fail_StoreError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/new-id", nil)
	ctx := req.Context()

	mockCS := new(mockCanvasService)
	mockCS.On("AllocateID", ctx).Return("", errors.New("db down"))

	NewID(ctx, slog.Default(), w, req, mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	mockCS.AssertExpectations(t)
}
