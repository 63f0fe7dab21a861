// Package notify delivers structured sync and import outcomes to the presentation layer.
package notify

import (
	"context"
	"fmt"
	"time"
)

// Kind identifies what happened
type Kind string

const (
	KindSyncCompleted Kind = "sync_completed"
	KindRecordsAdded  Kind = "records_added"
	KindImported      Kind = "imported"
	KindPushed        Kind = "pushed"
)

// Status отличает успешные события от ошибок
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Notification is a structured outcome handed to a Notifier
type Notification struct {
	Time      time.Time
	Err       error
	Kind      Kind
	Status    Status
	Operation string // имя операции: "sync", "import", "push"
	Source    string // файл импорта, если есть
	Added     int
	Conflicts int
	Count     int
}

// Message returns a short user-facing description
func (n Notification) Message() string {
	if n.Status == StatusFailed {
		if n.Err == nil {
			return n.Operation + " failed"
		}
		return fmt.Sprintf("%s failed: %v", n.Operation, n.Err)
	}

	switch n.Kind {
	case KindSyncCompleted:
		return fmt.Sprintf("Quotes synced: %d added, %d conflicts resolved", n.Added, n.Conflicts)
	case KindRecordsAdded:
		return fmt.Sprintf("%d new quotes added", n.Count)
	case KindImported:
		if n.Source != "" {
			return fmt.Sprintf("Imported %d quotes from %s", n.Count, n.Source)
		}
		return fmt.Sprintf("Imported %d quotes", n.Count)
	case KindPushed:
		return fmt.Sprintf("%d quotes pushed to server", n.Count)
	default:
		return string(n.Kind)
	}
}

// Failed builds a failure notification for the named operation
func Failed(operation string, err error) Notification {
	return Notification{
		Time:      time.Now(),
		Status:    StatusFailed,
		Operation: operation,
		Err:       err,
	}
}

//go:generate moq -out notifier_mock.go . Notifier

// Notifier получает уведомления. Реализации не должны блокироваться надолго
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Func is a function adapter for Notifier
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// Discard drops every notification
var Discard Notifier = Func(func(context.Context, Notification) {})

// Multi fans a notification out to several notifiers in order
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, n Notification) {
		for _, notifier := range notifiers {
			if notifier != nil {
				notifier.Notify(ctx, n)
			}
		}
	})
}
