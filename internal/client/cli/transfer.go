package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) runExport(ctx context.Context, path string) error {
	if err := c.transfer.ExportFile(ctx, path); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	c.io.Printf("✓ Exported %d quotes to %s\n", len(c.dataService.ListQuotes(models.CategoryAll)), path)
	return nil
}

func (c *Cli) runImport(ctx context.Context, path string) error {
	n, err := c.transfer.ImportFile(ctx, path)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	c.io.Printf("✓ Imported %d quotes from %s\n", n, path)
	return nil
}
