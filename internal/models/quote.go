package models

import (
	"strings"
	"time"
)

// Префиксы идентификаторов. Локальные и серверные id живут в разных
// пространствах имён, поэтому синхронизация никогда не перезаписывает
// цитату, созданную локально.
const (
	LocalIDPrefix  = "local-"
	RemoteIDPrefix = "server-"

	// RemoteCategoryPrefix префикс категории, синтезируемой из группы поста
	RemoteCategoryPrefix = "Server-"

	// CategoryAll специальное значение фильтра: без фильтрации
	CategoryAll = "all"
)

// Quote представляет одну цитату (запись) в локальном хранилище.
type Quote struct {
	ID       string `json:"id"`       // ID идентификатор записи (local-* или server-*)
	Text     string `json:"text"`     // Text текст цитаты
	Category string `json:"category"` // Category категория цитаты
}

// IsLocal сообщает, была ли цитата создана на этом клиенте.
func (q Quote) IsLocal() bool {
	return strings.HasPrefix(q.ID, LocalIDPrefix)
}

// IsRemote сообщает, пришла ли цитата с удалённого источника.
func (q Quote) IsRemote() bool {
	return strings.HasPrefix(q.ID, RemoteIDPrefix)
}

// MatchesCategory проверяет, проходит ли цитата фильтр по категории.
// Пустой фильтр и "all" пропускают всё.
func (q Quote) MatchesCategory(filter string) bool {
	if filter == "" || filter == CategoryAll {
		return true
	}
	return q.Category == filter
}

// SyncOutcome описывает результат одного прохода reconciliation.
// Не сохраняется: передаётся уведомителю и отбрасывается.
type SyncOutcome struct {
	Timestamp time.Time `json:"timestamp"` // Timestamp время завершения прохода
	Added     int       `json:"added"`     // Added количество новых записей
	Conflicts int       `json:"conflicts"` // Conflicts количество перезаписей с отличающимся текстом
}

// Changed сообщает, изменил ли проход хранилище заметным для пользователя образом.
func (o SyncOutcome) Changed() bool {
	return o.Added > 0 || o.Conflicts > 0
}

// DefaultQuotes возвращает набор цитат, которым засевается пустое хранилище.
func DefaultQuotes() []Quote {
	return []Quote{
		{
			ID:       LocalIDPrefix + "1",
			Text:     "The only way to do great work is to love what you do.",
			Category: "Work",
		},
		{
			ID:       LocalIDPrefix + "2",
			Text:     "Strive not to be a success, but rather to be of value.",
			Category: "Inspiration",
		},
	}
}

// CloneQuotes возвращает независимую копию среза цитат.
func CloneQuotes(quotes []Quote) []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}
