// Package clock выдаёт монотонные метки времени для локальных идентификаторов цитат.
package clock

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

// IDClock выдаёт строго возрастающие метки в миллисекундах Unix.
// Метка берётся из физического времени, но никогда не повторяется
// и не уменьшается: если часы стоят на месте или ушли назад,
// возвращается last+1. Это делает локальные id уникальными и
// упорядоченными по времени создания.
type IDClock struct {
	now  func() time.Time
	last int64
	mu   sync.Mutex
}

// New создает часы поверх функции now. nil означает time.Now.
func New(now func() time.Time) *IDClock {
	if now == nil {
		now = time.Now
	}
	return &IDClock{now: now}
}

// Tick возвращает следующую метку.
func (c *IDClock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}

// Observe учитывает уже выданную ранее метку (например, прочитанную из хранилища),
// чтобы следующие Tick не вернули её повторно.
func (c *IDClock) Observe(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts > c.last {
		c.last = ts
	}
}

// Last возвращает последнюю выданную или учтённую метку.
func (c *IDClock) Last() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// NextLocalID возвращает новый локальный идентификатор вида "local-<ms>".
func (c *IDClock) NextLocalID() string {
	return models.LocalIDPrefix + strconv.FormatInt(c.Tick(), 10)
}

// ObserveID учитывает метку из локального идентификатора.
// Идентификаторы другого формата игнорируются.
func (c *IDClock) ObserveID(id string) {
	if ts, ok := ParseLocalID(id); ok {
		c.Observe(ts)
	}
}

// ParseLocalID извлекает числовую метку из идентификатора "local-<n>".
func ParseLocalID(id string) (int64, bool) {
	suffix, found := strings.CutPrefix(id, models.LocalIDPrefix)
	if !found || suffix == "" {
		return 0, false
	}
	ts, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || ts < 0 {
		return 0, false
	}
	return ts, true
}
