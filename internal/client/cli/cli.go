// Package cli implements the quotesync client commands.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/iocli"
	"github.com/iudanet/quotesync/internal/client/sync"
)

//go:generate moq -out transfer_mock.go . Transfer

// Transfer импортирует и экспортирует цитаты через файлы
type Transfer interface {
	ImportFile(ctx context.Context, path string) (int, error)
	ExportFile(ctx context.Context, path string) error
}

//go:generate moq -out runner_mock.go . Runner

// Runner фоновая задача, работающая до отмены контекста (наблюдатель inbox)
type Runner interface {
	Run(ctx context.Context) error
}

// DefaultSyncInterval период синхронизации в режиме watch по умолчанию
const DefaultSyncInterval = 30 * time.Second

type Cli struct {
	io           iocli.IO
	dataService  data.Service
	syncService  sync.Service
	transfer     Transfer
	inbox        Runner
	logger       *slog.Logger
	syncInterval time.Duration
}

// New creates a Cli. inbox may be nil when no inbox directory is configured
func New(io iocli.IO, dataService data.Service, syncService sync.Service, transfer Transfer, inbox Runner, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:           io,
		dataService:  dataService,
		syncService:  syncService,
		transfer:     transfer,
		inbox:        inbox,
		logger:       logger,
		syncInterval: DefaultSyncInterval,
	}
}

// WithSyncInterval sets the default watch interval. Non-positive values are ignored
func (c *Cli) WithSyncInterval(d time.Duration) *Cli {
	if d > 0 {
		c.syncInterval = d
	}
	return c
}
