// Package api содержит DTO, которыми обмениваются клиент и posts-сервер.
// Формат совместим с JSONPlaceholder /posts.
package api

// Post представляет один пост удалённого источника
type Post struct {
	Title  string `json:"title"`  // заголовок, становится текстом цитаты
	Body   string `json:"body"`   // тело поста
	ID     int64  `json:"id"`     // идентификатор поста на сервере
	UserID int64  `json:"userId"` // группа (автор) поста
}

// CreatePostRequest представляет запрос на создание поста
type CreatePostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

