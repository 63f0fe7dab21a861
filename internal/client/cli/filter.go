package cli

import (
	"context"
	"fmt"
	"slices"
)

func (c *Cli) runFilter(ctx context.Context, category string) error {
	if category == "" {
		c.io.Printf("Current filter: %s\n", c.dataService.CurrentFilter())
		return nil
	}

	if !slices.Contains(c.dataService.Categories(), category) {
		return fmt.Errorf("unknown category: %s. Use 'quotesync categories' to list them", category)
	}

	if err := c.dataService.SelectFilter(ctx, category); err != nil {
		return err
	}

	c.io.Printf("✓ Filter set to %s\n", category)
	return nil
}
