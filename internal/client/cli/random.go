package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) runRandom(ctx context.Context, category string) error {
	q, err := c.dataService.RandomQuote(ctx, category)
	if err != nil {
		if errors.Is(err, data.ErrNoQuotes) {
			c.io.Println("No quotes available for this category.")
			return nil
		}
		return fmt.Errorf("failed to pick quote: %w", err)
	}

	showQuote(c, *q)
	return nil
}

func (c *Cli) runLast(ctx context.Context) error {
	q, err := c.dataService.LastShown(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrLastQuoteNotFound) {
			c.io.Println("No quote shown in this session yet.")
			return nil
		}
		return err
	}

	showQuote(c, *q)
	return nil
}

func showQuote(c *Cli, q models.Quote) {
	c.io.Printf("\"%s\"\n", q.Text)
	c.io.Printf("  (%s)\n", q.Category)
}
