// Package transfer exports the quote collection as JSON and merges
// externally supplied batches into it with text-based de-duplication.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
)

// importRecord is one element of an import file. Id is optional
type importRecord struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Merger is the Import/Export Merger
type Merger struct {
	store  *store.Store
	logger *slog.Logger
}

// NewMerger creates a merger bound to a store
func NewMerger(st *store.Store, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{store: st, logger: logger}
}

// Export serializes all quotes as a pretty-printed JSON array
func (m *Merger) Export(ctx context.Context) ([]byte, error) {
	data, err := json.MarshalIndent(m.store.Get(""), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quotes: %w", err)
	}
	return append(data, '\n'), nil
}

// Import parses raw as a JSON array of quotes and appends those whose text
// is not already present. Returns the number of appended quotes.
func (m *Merger) Import(ctx context.Context, raw []byte) (int, error) {
	records, err := parseImport(raw)
	if err != nil {
		return 0, err
	}

	var appended, skipped int
	err = m.store.Apply(ctx, func(b *store.Batch) error {
		appended, skipped = mergeRecords(b, records)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply import: %w", err)
	}

	m.logger.Info("Quotes imported",
		"received", len(records),
		"appended", appended,
		"skipped", skipped)

	return appended, nil
}

// parseImport проверяет структуру: массив верхнего уровня из объектов
func parseImport(raw []byte) ([]importRecord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%w: top-level value must be a JSON array: %w", ErrImportFormat, err)
	}
	if elements == nil {
		// литерал null
		return nil, fmt.Errorf("%w: top-level value must be a JSON array", ErrImportFormat)
	}

	records := make([]importRecord, 0, len(elements))
	for i, el := range elements {
		trimmed := bytes.TrimSpace(el)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrImportFormat, i)
		}

		var rec importRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrImportFormat, i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// mergeRecords добавляет записи, текст которых ещё не встречался,
// включая записи, добавленные ранее в этом же импорте
func mergeRecords(b *store.Batch, records []importRecord) (appended, skipped int) {
	for _, rec := range records {
		if strings.TrimSpace(rec.Text) == "" || strings.TrimSpace(rec.Category) == "" {
			skipped++
			continue
		}
		if b.HasText(rec.Text) {
			skipped++
			continue
		}

		id := rec.ID
		if _, taken := b.Lookup(id); id == "" || taken {
			id = b.NewLocalID()
		}

		b.Upsert(models.Quote{ID: id, Text: rec.Text, Category: rec.Category})
		appended++
	}
	return appended, skipped
}

// ImportFile imports quotes from a file
func (m *Merger) ImportFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read import file: %w", err)
	}
	return m.Import(ctx, raw)
}

// ExportFile writes the export to path via a temporary file and rename
func (m *Merger) ExportFile(ctx context.Context, path string) error {
	data, err := m.Export(ctx)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set export permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move export into place: %w", err)
	}

	return nil
}
