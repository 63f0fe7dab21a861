package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// healthTimeout ограничивает проверку базы данных
const healthTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	db      Pinger
	version string
}

// NewHealthHandler создает новый handler для health check. db может быть nil
func NewHealthHandler(logger *slog.Logger, db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		version: version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Version: h.version}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Error("Database health check failed", "error", err)
			resp.Status = "unavailable"
			sendJSON(w, h.logger, resp, http.StatusServiceUnavailable)
			return
		}
	}

	sendJSON(w, h.logger, resp, http.StatusOK)
}
