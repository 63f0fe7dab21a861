package cli

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) runList(ctx context.Context, category string) error {
	if category == "" {
		category = c.dataService.CurrentFilter()
	}

	quotes := c.dataService.ListQuotes(category)

	c.io.Printf("=== Quotes (%s) ===\n", category)
	c.io.Println()

	if len(quotes) == 0 {
		c.io.Println("No quotes found.")
		c.io.Println()
		c.io.Println("Use 'quotesync add' to add your first quote.")
		return nil
	}

	for i, q := range quotes {
		printQuote(c, i+1, q)
	}

	c.io.Printf("Total: %d\n", len(quotes))
	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	current := c.dataService.CurrentFilter()

	for _, category := range c.dataService.Categories() {
		marker := " "
		if category == current {
			marker = "*"
		}
		c.io.Printf("%s %s\n", marker, category)
	}
	return nil
}

func printQuote(c *Cli, n int, q models.Quote) {
	c.io.Printf("%d. \"%s\"\n", n, q.Text)
	c.io.Printf("   Category: %s\n", q.Category)
	c.io.Printf("   ID:       %s\n", q.ID)
	c.io.Println()
}
