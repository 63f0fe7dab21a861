package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/iudanet/quotesync/internal/client/notify"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/crypto"
)

const operationImport = "import"

// InboxWatcher imports every *.json file that appears in a directory.
// Content already imported once (by BLAKE2b hash) is skipped.
type InboxWatcher struct {
	merger   *Merger
	metadata storage.MetadataStorage
	notifier notify.Notifier
	logger   *slog.Logger
	dir      string
}

// NewInboxWatcher creates a watcher for dir
func NewInboxWatcher(dir string, merger *Merger, metadata storage.MetadataStorage, notifier notify.Notifier, logger *slog.Logger) *InboxWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	return &InboxWatcher{
		dir:      dir,
		merger:   merger,
		metadata: metadata,
		notifier: notifier,
		logger:   logger,
	}
}

// Run scans existing files and then watches the directory until ctx is done
func (w *InboxWatcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create inbox directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch inbox directory %s: %w", w.dir, err)
	}

	w.logger.Info("Watching import inbox", "dir", w.dir)

	// Файлы, появившиеся до запуска
	if err := w.Scan(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInboxEvent(event) {
				continue
			}
			w.process(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Inbox watcher error", "error", err)
		}
	}
}

// Scan imports every *.json file currently in the inbox, in name order
func (w *InboxWatcher) Scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("failed to read inbox directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isJSONFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		w.process(ctx, filepath.Join(w.dir, name))
	}
	return nil
}

// process импортирует файл, если его содержимое ещё не импортировалось.
// Возвращает количество добавленных цитат
func (w *InboxWatcher) process(ctx context.Context, path string) int {
	logger := w.logger.With("file", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to read inbox file", "error", err)
		}
		return 0
	}
	if len(raw) == 0 {
		// файл создан, но ещё не записан
		return 0
	}

	hash := crypto.ContentHash(raw)
	seen, err := w.metadata.HasImportHash(ctx, hash)
	if err != nil {
		logger.Warn("Failed to check import hash", "error", err)
		return 0
	}
	if seen {
		logger.Debug("Inbox file already imported, skipping", "hash", hash)
		return 0
	}

	count, err := w.merger.Import(ctx, raw)
	if err != nil {
		logger.Warn("Inbox import failed", "error", err)
		w.notifier.Notify(ctx, notify.Notification{
			Status:    notify.StatusFailed,
			Operation: operationImport,
			Source:    filepath.Base(path),
			Err:       err,
		})
		return 0
	}

	if err := w.metadata.SaveImportHash(ctx, hash); err != nil {
		logger.Warn("Failed to save import hash", "error", err)
	}

	w.notifier.Notify(ctx, notify.Notification{
		Kind:      notify.KindImported,
		Status:    notify.StatusOK,
		Operation: operationImport,
		Source:    filepath.Base(path),
		Count:     count,
	})
	return count
}

func isInboxEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	return isJSONFile(event.Name)
}

func isJSONFile(name string) bool {
	base := filepath.Base(name)
	// Скрытые и временные файлы редакторов
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".json")
}
