package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/config"
	"github.com/iudanet/quotesync/internal/logging"
	"github.com/iudanet/quotesync/internal/server"
	"github.com/iudanet/quotesync/internal/server/handlers"
	"github.com/iudanet/quotesync/internal/server/storage/sqlite"
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

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath, addr, dbPath string
	var seed bool

	cmd := &cobra.Command{
		Use:           "quotesync-server",
		Short:         "Reference posts server for quotesync",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dbPath != "" {
				cfg.Database.Path = dbPath
			}
			if seed {
				cfg.Seed = true
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to SQLite database (default: from config)")
	cmd.Flags().BoolVar(&seed, "seed", false, "seed an empty database with sample posts")

	cmd.AddCommand(newTokenCommand(&configPath), newVersionCommand())

	return cmd
}

func loadConfig(path string) (*config.ServerConfig, error) {
	cfg, err := config.LoadServer(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func jwtConfig(cfg *config.ServerConfig) handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
	}
}

func run(ctx context.Context, cfg *config.ServerConfig) error {
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	defer func() {
		_ = logCloser.Close()
	}()

	db, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if cfg.Seed {
		n, err := db.Seed(ctx, sqlite.DefaultSeedPosts())
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		if n > 0 {
			logger.Info("Database seeded", "posts", n)
		}
	}

	srv := server.New(server.Config{
		JWT:             jwtConfig(cfg),
		Addr:            cfg.Addr,
		Version:         Version,
		RateLimit:       cfg.RateLimit.Requests,
		RateWindow:      cfg.RateLimit.Window,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, db, logger)

	return srv.Run(ctx)
}

// newTokenCommand выпускает JWT для записи постов от имени группы userId
func newTokenCommand(configPath *string) *cobra.Command {
	var userID int64
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a write token for the posts API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			jc := jwtConfig(cfg)
			if ttl > 0 {
				jc.TTL = ttl
			}

			token, expiresAt, err := handlers.GenerateAccessToken(jc, userID)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, token)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 1, "userId (post group) the token writes as")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: from config)")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "quotesync server\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}
