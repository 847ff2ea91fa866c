package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorInterface(t *testing.T) {
	err := New(http.StatusNotFound, "DATASET_NOT_FOUND", "Dataset not found")
	assert.Equal(t, "Dataset not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "DATASET_NOT_FOUND", err.ErrorCode)
}

func TestAPIErrorRender(t *testing.T) {
	apiErr := DatasetNotFoundWithID("missing.zip")

	req := httptest.NewRequest(http.MethodGet, "/download/missing.zip", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, render.Render(rec, req, apiErr))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DATASET_NOT_FOUND", body["error_code"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "missing.zip", details["dataset_id"])
}

func TestNewWithDetails(t *testing.T) {
	err := NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "bad", "because")
	assert.Equal(t, "because", err.Details)
}

func TestInternalServerWithError(t *testing.T) {
	err := InternalServerWithError(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, assert.AnError.Error(), err.Details)
}
