package transfer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/notify"
	"github.com/iudanet/quotesync/internal/client/storage/memory"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/crypto"
	"github.com/iudanet/quotesync/internal/models"
)

type inboxFixture struct {
	watcher  *InboxWatcher
	store    *store.Store
	mem      *memory.Storage
	notifier *notify.NotifierMock
	dir      string
}

func newInboxFixture(t *testing.T) *inboxFixture {
	t.Helper()
	ctx := context.Background()
	mem := memory.New()
	require.NoError(t, mem.SaveQuotes(ctx, []models.Quote{}))
	st, err := store.New(ctx, mem, nil, nil)
	require.NoError(t, err)

	notifier := &notify.NotifierMock{NotifyFunc: func(ctx context.Context, n notify.Notification) {}}

	dir := filepath.Join(t.TempDir(), "inbox")
	return &inboxFixture{
		watcher:  NewInboxWatcher(dir, NewMerger(st, nil), mem, notifier, nil),
		store:    st,
		mem:      mem,
		notifier: notifier,
		dir:      dir,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestInboxScan_ImportsOnce(t *testing.T) {
	ctx := context.Background()
	f := newInboxFixture(t)
	require.NoError(t, os.MkdirAll(f.dir, 0o755))

	content := `[{"text":"A","category":"X"},{"text":"B","category":"X"}]`
	writeFile(t, filepath.Join(f.dir, "b.json"), content)
	writeFile(t, filepath.Join(f.dir, "a.json"), `[{"text":"C","category":"Y"}]`)
	writeFile(t, filepath.Join(f.dir, "notes.txt"), `[{"text":"ignored","category":"Y"}]`)
	writeFile(t, filepath.Join(f.dir, ".hidden.json"), `[{"text":"ignored","category":"Y"}]`)

	require.NoError(t, f.watcher.Scan(ctx))
	assert.Equal(t, 3, f.store.Len())

	// Файлы обрабатываются в порядке имён
	calls := f.notifier.NotifyCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "a.json", calls[0].N.Source)
	assert.Equal(t, 1, calls[0].N.Count)
	assert.Equal(t, "b.json", calls[1].N.Source)
	assert.Equal(t, notify.KindImported, calls[1].N.Kind)

	seen, err := f.mem.HasImportHash(ctx, crypto.ContentHash([]byte(content)))
	require.NoError(t, err)
	assert.True(t, seen)

	// Повторное сканирование ничего не импортирует и не уведомляет
	require.NoError(t, f.watcher.Scan(ctx))
	assert.Equal(t, 3, f.store.Len())
	assert.Len(t, f.notifier.NotifyCalls(), 2)

	// Та же копия под другим именем тоже пропускается
	writeFile(t, filepath.Join(f.dir, "c.json"), content)
	require.NoError(t, f.watcher.Scan(ctx))
	assert.Len(t, f.notifier.NotifyCalls(), 2)
}

func TestInboxProcess_FormatErrorNotified(t *testing.T) {
	ctx := context.Background()
	f := newInboxFixture(t)
	require.NoError(t, os.MkdirAll(f.dir, 0o755))

	path := filepath.Join(f.dir, "bad.json")
	writeFile(t, path, `{"text":"not an array"}`)

	assert.Zero(t, f.watcher.process(ctx, path))
	assert.Equal(t, 0, f.store.Len())

	calls := f.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, notify.StatusFailed, calls[0].N.Status)
	assert.ErrorIs(t, calls[0].N.Err, ErrImportFormat)

	// Неудачный импорт не запоминается: исправленный файл импортируется
	seen, err := f.mem.HasImportHash(ctx, crypto.ContentHash([]byte(`{"text":"not an array"}`)))
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestInboxProcess_EmptyAndMissingFiles(t *testing.T) {
	ctx := context.Background()
	f := newInboxFixture(t)
	require.NoError(t, os.MkdirAll(f.dir, 0o755))

	empty := filepath.Join(f.dir, "empty.json")
	writeFile(t, empty, "")
	assert.Zero(t, f.watcher.process(ctx, empty))
	assert.Zero(t, f.watcher.process(ctx, filepath.Join(f.dir, "gone.json")))
	assert.Empty(t, f.notifier.NotifyCalls())
}

func TestInboxRun_WatchesNewFiles(t *testing.T) {
	f := newInboxFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f.watcher.Run(ctx)
	}()

	// Run создаёт директорию сам
	require.Eventually(t, func() bool {
		_, err := os.Stat(f.dir)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	// Дать watcher время подписаться на директорию
	time.Sleep(50 * time.Millisecond)

	writeFile(t, filepath.Join(f.dir, "drop.json"), `[{"text":"dropped","category":"Inbox"}]`)

	require.Eventually(t, func() bool {
		return len(f.store.Get("Inbox")) == 1
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestIsJSONFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "quotes.json", want: true},
		{name: "/tmp/inbox/UPPER.JSON", want: true},
		{name: "quotes.json.swp", want: false},
		{name: ".quotes.json", want: false},
		{name: "quotes.txt", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isJSONFile(tt.name), tt.name)
	}
}
