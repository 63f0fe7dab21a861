package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyPendingPush       = "pending_push"
	importHashPrefix     = "import_hash:"
)

// SaveLastSyncTimestamp saves the timestamp of the last completed sync pass
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Конвертируем int64 в bytes
	timestampBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

	if err := s.put(bucketMetadata, keyLastSyncTimestamp, timestampBytes); err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}

	return nil
}

// GetLastSyncTimestamp retrieves the timestamp of the last completed sync pass
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	timestampBytes, err := s.get(bucketMetadata, keyLastSyncTimestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}
	if len(timestampBytes) != 8 {
		// Если timestamp не найден, возвращаем 0 (первая синхронизация)
		return 0, nil
	}

	return int64(binary.BigEndian.Uint64(timestampBytes)), nil
}

// AddPendingPush добавляет id в очередь неподтвержденных отправок (без дублей)
func (s *Storage) AddPendingPush(ctx context.Context, id string) error {
	return s.updatePending(func(ids []string) []string {
		if slices.Contains(ids, id) {
			return ids
		}
		return append(ids, id)
	})
}

// RemovePendingPush убирает id из очереди неподтвержденных отправок
func (s *Storage) RemovePendingPush(ctx context.Context, id string) error {
	return s.updatePending(func(ids []string) []string {
		return slices.DeleteFunc(ids, func(v string) bool { return v == id })
	})
}

// GetPendingPushes returns pending ids in insertion order
func (s *Storage) GetPendingPushes(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	data, err := s.get(bucketMetadata, keyPendingPush)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending pushes: %w", err)
	}

	return decodePending(data)
}

// updatePending выполняет read-modify-write очереди в одной транзакции
func (s *Storage) updatePending(modify func([]string) []string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		ids, err := decodePending(bucket.Get([]byte(keyPendingPush)))
		if err != nil {
			return err
		}

		data, err := json.Marshal(modify(ids))
		if err != nil {
			return fmt.Errorf("failed to marshal pending pushes: %w", err)
		}

		return bucket.Put([]byte(keyPendingPush), data)
	})
	if err != nil {
		return fmt.Errorf("failed to update pending pushes: %w", err)
	}

	return nil
}

func decodePending(data []byte) ([]string, error) {
	ids := []string{}
	if data == nil {
		return ids, nil
	}
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending pushes: %w", err)
	}
	return ids, nil
}

// HasImportHash reports whether content with this hash was already imported
func (s *Storage) HasImportHash(ctx context.Context, hash string) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	data, err := s.get(bucketMetadata, importHashPrefix+hash)
	if err != nil {
		return false, fmt.Errorf("failed to check import hash: %w", err)
	}

	return data != nil, nil
}

// SaveImportHash remembers the hash of imported content
func (s *Storage) SaveImportHash(ctx context.Context, hash string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if err := s.put(bucketMetadata, importHashPrefix+hash, []byte{1}); err != nil {
		return fmt.Errorf("failed to save import hash: %w", err)
	}

	return nil
}
