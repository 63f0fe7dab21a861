package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// UserIDKey ключ для хранения userId из токена
const UserIDKey contextKey = "user_id"

// WithUserID returns a copy of ctx carrying the authenticated userId
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID извлекает userId из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
