package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
// Пустые значения означают "взять из конфигурации".
type RootOptions struct {
	ConfigPath     string
	DBPath         string
	ServerURL      string
	LogLevel       string
	RestoreSession bool
	Ephemeral      bool
}

// VersionInfo is set via ldflags during build
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Builder собирает зависимости клиента по глобальным флагам.
// cleanup закрывает хранилище и вызывается после выполнения команды.
type Builder func(ctx context.Context, opts *RootOptions) (c *Cli, cleanup func(), err error)

type app struct {
	opts  *RootOptions
	build Builder
}

// with собирает Cli и выполняет fn, гарантируя освобождение ресурсов
func (a *app) with(cmd *cobra.Command, fn func(ctx context.Context, c *Cli) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, cleanup, err := a.build(ctx, a.opts)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, c)
}

// NewRootCommand creates the root command for the quotesync client.
func NewRootCommand(build Builder, info VersionInfo) *cobra.Command {
	a := &app{opts: &RootOptions{}, build: build}

	cmd := &cobra.Command{
		Use:           "quotesync",
		Short:         "Local-first quote collection with server sync",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.ConfigPath, "config", "", "path to YAML config file")
	flags.StringVar(&a.opts.DBPath, "db", "", "path to local database")
	flags.StringVar(&a.opts.ServerURL, "server", "", "remote posts endpoint URL")
	flags.StringVar(&a.opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.BoolVar(&a.opts.RestoreSession, "restore-session", false, "keep the last shown quote from the previous session")
	flags.BoolVar(&a.opts.Ephemeral, "ephemeral", false, "use in-memory storage, nothing is written to disk")

	cmd.AddCommand(
		newAddCommand(a),
		newListCommand(a),
		newCategoriesCommand(a),
		newFilterCommand(a),
		newRandomCommand(a),
		newLastCommand(a),
		newSyncCommand(a),
		newWatchCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newVersionCommand(info),
	)

	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	var category string
	var push bool

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a new quote",
		Long: `Add a new quote to the local collection and send it to the server.

The quote is saved locally first. If the server is unreachable the quote
stays queued and is sent by the next sync.

Example:
  quotesync add "Simplicity is prerequisite for reliability." -c Engineering
  quotesync add   # interactive prompt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			}
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runAdd(ctx, text, category, push)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "quote category")
	cmd.Flags().BoolVar(&push, "push", true, "send the quote to the server right away")

	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes of the selected category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runList(ctx, category)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category to list (default: selected filter)")

	return cmd
}

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runCategories(ctx)
			})
		},
	}
}

func newFilterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter [category]",
		Short: "Show or select the category filter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var category string
			if len(args) == 1 {
				category = args[0]
			}
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runFilter(ctx, category)
			})
		},
	}
}

func newRandomCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runRandom(ctx, category)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category to pick from (default: selected filter)")

	return cmd
}

func newLastCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the last quote shown in this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runLast(ctx)
			})
		},
	}
}

func newSyncCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one synchronization pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runSync(ctx)
			})
		},
	}
}

func newWatchCommand(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically and import files dropped into the inbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				d := interval
				if d <= 0 {
					d = c.syncInterval
				}
				return c.runWatch(ctx, d)
			})
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "sync interval (default: from config)")

	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export all quotes to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runExport(ctx, args[0])
			})
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge quotes from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.with(cmd, func(ctx context.Context, c *Cli) error {
				return c.runImport(ctx, args[0])
			})
		},
	}
}

func newVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "quotesync client\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", info.Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
			return nil
		},
	}
}
