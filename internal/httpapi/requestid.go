package httpapi

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	headerRequestID = "X-Request-ID"
	maxRequestIDLen = 64
	fallbackID      = "rid-fallback"
)

// WithRequestID tags every request with an id, echoes it in the response
// header and stores it under chi's key so middleware.GetReqID sees it too.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestIDFor(r)
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), middleware.RequestIDKey, id)))
	})
}

// RequestID returns the id set by WithRequestID, or "" outside it.
func RequestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// requestIDFor keeps a caller-supplied id only when it is short printable
// ASCII without spaces; anything else is replaced so it cannot break log lines.
func requestIDFor(r *http.Request) string {
	if id := r.Header.Get(headerRequestID); acceptableID(id) {
		return id
	}
	return newID()
}

func acceptableID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range []byte(id) {
		if c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}

func newID() string {
	var b [16]byte
	if _, err := crand.Reader.Read(b[:]); err != nil {
		return fallbackID
	}
	return hex.EncodeToString(b[:])
}
