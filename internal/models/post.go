package models

import "time"

// Post представляет пост эталонного сервера. Клиент видит его как цитату
// server-<ID> в категории Server-<UserID>.
type Post struct {
	CreatedAt time.Time // CreatedAt время создания записи на сервере
	Title     string    // Title заголовок (текст цитаты)
	Body      string    // Body тело поста (категория цитаты для постов клиента)
	ID        int64     // ID автоинкрементный идентификатор
	UserID    int64     // UserID группа, из которой синтезируется категория
}
