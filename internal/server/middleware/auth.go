package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/quotesync/internal/server/handlers"
)

// AuthMiddleware проверяет Bearer JWT и кладёт userId в контекст запроса.
// Если секрет не задан, запросы пропускаются без проверки.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !jwtConfig.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				logger.Warn("Missing or malformed Authorization header", "request_id", RequestID(r.Context()))
				handlers.SendError(w, logger, "unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, token)
			if err != nil {
				logger.Warn("Invalid access token", "request_id", RequestID(r.Context()), "error", err)
				handlers.SendError(w, logger, "unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.Debug("Request authenticated", "user_id", claims.UserID)

			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(r.Context(), claims.UserID)))
		})
	}
}
