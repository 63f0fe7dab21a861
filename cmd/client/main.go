package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/cli"
	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/iocli"
	"github.com/iudanet/quotesync/internal/client/notify"
	"github.com/iudanet/quotesync/internal/client/reconcile"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/boltdb"
	"github.com/iudanet/quotesync/internal/client/storage/memory"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/client/sync"
	"github.com/iudanet/quotesync/internal/client/transfer"
	"github.com/iudanet/quotesync/internal/clock"
	"github.com/iudanet/quotesync/internal/config"
	"github.com/iudanet/quotesync/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(build, cli.VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig читает файл конфигурации и применяет поверх него глобальные флаги
func loadConfig(opts *cli.RootOptions) (*config.ClientConfig, error) {
	cfg, err := config.LoadClient(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.DBPath != "" {
		cfg.Storage.Path = opts.DBPath
	}
	if opts.ServerURL != "" {
		cfg.Remote.URL = opts.ServerURL
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Ephemeral {
		cfg.Storage.Ephemeral = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func openStorage(ctx context.Context, cfg *config.ClientConfig) (storage.Storage, error) {
	if cfg.Storage.Ephemeral {
		return memory.New(), nil
	}

	st, err := boltdb.New(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// build собирает все зависимости клиента
func build(ctx context.Context, opts *cli.RootOptions) (*cli.Cli, func(), error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logging: %w", err)
	}
	slog.SetDefault(logger)

	st, err := openStorage(ctx, cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
		_ = logCloser.Close()
	}

	// Новая сессия начинается без последней показанной цитаты
	if !opts.RestoreSession {
		if err := st.ClearSession(ctx); err != nil {
			logger.Warn("Failed to clear session", "error", err)
		}
	}

	quotes, err := store.New(ctx, st, clock.New(time.Now), logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	gateway := api.NewClient(cfg.Remote.URL,
		api.WithTimeout(cfg.Remote.Timeout),
		api.WithRetries(cfg.Remote.MaxRetries, api.DefaultRetryBackoff),
		api.WithToken(cfg.Remote.Token),
		api.WithUserID(cfg.Remote.UserID),
		api.WithLogger(logger),
	)

	io := iocli.NewStdio()
	notifier := notify.Multi(notify.NewConsole(os.Stdout), notify.NewLog(logger))

	scheduler := sync.NewScheduler(gateway, quotes, reconcile.New(time.Now, logger), st, notifier, logger)
	merger := transfer.NewMerger(quotes, logger)

	var inbox cli.Runner
	if cfg.Import.InboxDir != "" {
		inbox = transfer.NewInboxWatcher(cfg.Import.InboxDir, merger, st, notifier, logger)
	}

	dataService := data.NewService(quotes, gateway, st, st, logger)

	c := cli.New(io, dataService, scheduler, merger, inbox, logger).WithSyncInterval(cfg.Sync.Interval)

	return c, cleanup, nil
}
