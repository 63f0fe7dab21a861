package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/quotesync/internal/client/sync"
	"golang.org/x/sync/errgroup"
)

// stopTimeout ограничивает ожидание незавершённого прохода при выходе
const stopTimeout = 15 * time.Second

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.RunPass(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrPassInFlight) {
			return fmt.Errorf("another sync pass is running")
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Printf("Pass:               %s\n", result.ID)
	c.io.Printf("Fetched from server: %d\n", result.Fetched)
	c.io.Printf("Added locally:       %d\n", result.Outcome.Added)
	if result.Outcome.Conflicts > 0 {
		c.io.Printf("Conflicts resolved:  %d\n", result.Outcome.Conflicts)
	}
	if result.Pushed > 0 {
		c.io.Printf("Pushed to server:    %d\n", result.Pushed)
	}
	if result.PushFailed > 0 {
		c.io.Printf("Waiting for push:    %d\n", result.PushFailed)
	}

	return nil
}

// runWatch запускает периодическую синхронизацию и наблюдатель inbox до отмены ctx
func (c *Cli) runWatch(ctx context.Context, interval time.Duration) error {
	if err := c.syncService.Start(ctx, interval); err != nil {
		return fmt.Errorf("failed to start sync: %w", err)
	}

	c.io.Printf("Watching (sync every %s). Press Ctrl+C to stop.\n", interval)

	g, gctx := errgroup.WithContext(ctx)

	if c.inbox != nil {
		g.Go(func() error {
			return c.inbox.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
		defer cancel()

		if err := c.syncService.Stop(stopCtx); err != nil {
			c.logger.Warn("Sync scheduler did not stop cleanly", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	c.io.Println("Stopped.")
	return nil
}
