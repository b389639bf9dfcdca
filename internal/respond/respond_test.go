package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON_WritesStatusHeaderAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := map[string]any{"status": "ok", "n": 42}

	JSON(rec, http.StatusOK, payload)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	got := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ok", got["status"])
	require.Equal(t, float64(42), got["n"])
}

func TestError_OmitsEmptyRequestID(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusBadRequest, "bad_request", "invalid input", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotContains(t, rec.Body.String(), "request_id")

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "bad_request", body.Error)
	require.Equal(t, "invalid input", body.Message)
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name   string
		call   func(w http.ResponseWriter)
		status int
		code   string
	}{
		{"NotFound", func(w http.ResponseWriter) { NotFound(w, "rid-1") }, http.StatusNotFound, "not_found"},
		{"MethodNotAllowed", func(w http.ResponseWriter) { MethodNotAllowed(w, "GET", "rid-1") }, http.StatusMethodNotAllowed, "method_not_allowed"},
		{"Internal", func(w http.ResponseWriter) { Internal(w, "rid-1") }, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(rec)

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.code, body.Error)
			require.Equal(t, "rid-1", body.RequestID)
		})
	}
}

func TestMethodNotAllowed_SetsAllow(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, "GET, HEAD", "")
	require.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	HTML(rec, http.StatusOK, bytes.NewBufferString("<p>hi</p>"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "<p>hi</p>", rec.Body.String())

	rec = httptest.NewRecorder()
	HTML(rec, http.StatusNoContent, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Zero(t, rec.Body.Len())
}
