package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/quotesync/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, text, category string, push bool) error {
	var err error

	// Недостающие поля запрашиваем только у живого терминала
	if strings.TrimSpace(text) == "" && c.io.IsInteractive() {
		text, err = c.io.ReadInput("Quote: ")
		if err != nil {
			return fmt.Errorf("failed to read quote: %w", err)
		}
	}
	if err := validation.ValidateQuoteText(text); err != nil {
		return fmt.Errorf("invalid quote: %w", err)
	}

	if strings.TrimSpace(category) == "" && c.io.IsInteractive() {
		category, err = c.io.ReadInput("Category: ")
		if err != nil {
			return fmt.Errorf("failed to read category: %w", err)
		}
	}
	if err := validation.ValidateCategory(category); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}

	result, err := c.dataService.AddQuote(ctx, text, category, push)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Quote added: %s\n", result.Quote.ID)

	switch {
	case !result.PushAttempted:
	case result.Pushed:
		c.io.Println("✓ Pushed to server")
	default:
		c.io.Println("! Push failed, quote will be sent on next sync")
	}

	return nil
}
