package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/quotesync/pkg/api"
)

func sendJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// SendError пишет ответ с ошибкой в формате api.ErrorResponse
func SendError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	sendJSON(w, logger, api.ErrorResponse{Error: message}, statusCode)
}
