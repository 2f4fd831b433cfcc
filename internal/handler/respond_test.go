package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishav75way-bit/tracker/internal/validation"
)

func TestWriteSuccessWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, http.StatusCreated, map[string]int{"id": 1}, "created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.NotNil(t, body["data"])
}

func TestWriteSuccessOmitsEmptyMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, http.StatusOK, nil, "")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, hasMessage := body["message"]
	assert.False(t, hasMessage)
	// data is always present, even when null
	_, hasData := body["data"]
	assert.True(t, hasData)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusNotFound, "Expense not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Expense not found", body["message"])
	_, hasErrors := body["errors"]
	assert.False(t, hasErrors)
}

func TestWriteValidationErrors(t *testing.T) {
	errs := validation.FieldErrors{}
	errs.Add("amount", "Amount must be positive")

	rec := httptest.NewRecorder()
	writeValidationErrors(rec, errs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Validation error", body.Message)
	assert.Equal(t, []string{"Amount must be positive"}, body.Errors["amount"])
}

func TestDecodeJSONInvalidBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))

	var v map[string]any
	ok := decodeJSON(rec, req, &v)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeJSONBodyTooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	oversized := `{"note":"` + strings.Repeat("a", 1<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(oversized))

	var v map[string]any
	ok := decodeJSON(rec, req, &v)

	assert.False(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request body too large")
}

func TestDecodeJSONValidBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com"}`))

	var v map[string]any
	ok := decodeJSON(rec, req, &v)

	require.True(t, ok)
	assert.Equal(t, "a@x.com", v["email"])
}
