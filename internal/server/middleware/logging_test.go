package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		handler   http.HandlerFunc
		name      string
		wantLevel string
		status    int
	}{
		{name: "ok", handler: okHandler, status: http.StatusOK, wantLevel: "level=INFO"},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			status:    http.StatusNotFound,
			wantLevel: "level=WARN",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			status:    http.StatusInternalServerError,
			wantLevel: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf strings.Builder
			logger := slog.New(slog.NewTextHandler(&logBuf, nil))

			h := LoggingMiddleware(logger)(tt.handler)
			req := httptest.NewRequest(http.MethodGet, "/posts", nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			logs := logBuf.String()
			assert.Contains(t, logs, tt.wantLevel)
			assert.Contains(t, logs, "path=/posts")
			assert.Contains(t, logs, "request_id="+w.Header().Get(RequestIDHeader))
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var seen string
	h := LoggingMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})
}

func TestLoggingMiddleware_SkipPaths(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	h := LoggingMiddleware(logger, "/health")(http.HandlerFunc(okHandler))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, logBuf.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
