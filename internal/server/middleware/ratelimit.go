package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/quotesync/internal/server/handlers"
)

// RateLimiter ограничивает число запросов с одного клиента в окне фиксированной длины
type RateLimiter struct {
	now     func() time.Time
	windows map[string]*window
	done    chan struct{}
	limit   int
	period  time.Duration
	mu      sync.Mutex
	stop    sync.Once
}

// window счётчик запросов клиента в текущем окне
type window struct {
	start time.Time
	count int
}

// NewRateLimiter создает limiter на limit запросов за period.
// Вызовите Stop, чтобы остановить фоновую очистку.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		windows: make(map[string]*window),
		done:    make(chan struct{}),
		limit:   limit,
		period:  period,
	}

	go rl.evictLoop()

	return rl
}

// Allow учитывает запрос клиента key. Если лимит исчерпан, возвращает false
// и время до начала следующего окна.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.period {
		rl.windows[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, rl.period - now.Sub(w.start)
	}

	w.count++
	return true, 0
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() {
		close(rl.done)
	})
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evict()
		case <-rl.done:
			return
		}
	}
}

// evict удаляет окна, которые уже закончились
func (rl *RateLimiter) evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.period {
			delete(rl.windows, key)
		}
	}
}

// Middleware отвечает 429 с заголовком Retry-After, когда лимит клиента исчерпан
func (rl *RateLimiter) Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			ok, retryAfter := rl.Allow(key)
			if !ok {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"request_id", RequestID(r.Context()),
					"path", r.URL.Path,
				)

				seconds := int(retryAfter.Round(time.Second) / time.Second)
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				handlers.SendError(w, logger, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP определяет адрес клиента с учётом прокси (X-Forwarded-For, X-Real-IP)
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
