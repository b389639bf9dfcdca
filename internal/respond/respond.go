package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
)

type ErrorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, code, message, reqID string) {
	JSON(w, status, ErrorBody{
		Error:     code,
		Message:   message,
		RequestID: reqID,
	})
}

func NotFound(w http.ResponseWriter, reqID string) {
	Error(w, http.StatusNotFound, "not_found", "not found", reqID)
}

// MethodNotAllowed sets Allow to the given methods before answering 405.
func MethodNotAllowed(w http.ResponseWriter, allow, reqID string) {
	w.Header().Set("Allow", allow)
	Error(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", reqID)
}

func Internal(w http.ResponseWriter, reqID string) {
	Error(w, http.StatusInternalServerError, "internal", "internal error", reqID)
}

// HTML writes an already rendered page. Nothing is written on a nil buffer
// beyond the status line.
func HTML(w http.ResponseWriter, status int, page *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if page != nil {
		_, _ = page.WriteTo(w)
	}
}
