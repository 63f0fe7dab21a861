package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Console пишет уведомления построчно в writer
type Console struct {
	w  io.Writer
	mu sync.Mutex
}

// NewConsole creates a console notifier
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(ctx context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := ""
	if !n.Time.IsZero() {
		prefix = "[" + n.Time.Format("15:04:05") + "] "
	}
	_, _ = fmt.Fprintln(c.w, prefix+n.Message())
}

// Log пишет уведомления в slog
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log notifier. A nil logger means slog.Default()
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Notify(ctx context.Context, n Notification) {
	attrs := []any{
		"kind", n.Kind,
		"operation", n.Operation,
		"added", n.Added,
		"conflicts", n.Conflicts,
		"count", n.Count,
	}
	if n.Source != "" {
		attrs = append(attrs, "source", n.Source)
	}

	if n.Status == StatusFailed {
		l.logger.WarnContext(ctx, n.Message(), append(attrs, "error", n.Err)...)
		return
	}
	l.logger.InfoContext(ctx, n.Message(), attrs...)
}
