package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketLocal    = []byte("local")
	bucketSession  = []byte("session")
	bucketMetadata = []byte("metadata")
)

// openTimeout ограничивает ожидание файловой блокировки, если база уже открыта другим процессом
const openTimeout = time.Second

// Storage represents BoltDB storage implementation for client.
// It implements storage.QuoteStorage, storage.SessionStorage and storage.MetadataStorage.
type Storage struct {
	db *bbolt.DB
}

var _ storage.Storage = (*Storage)(nil)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketLocal, bucketSession, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// put записывает одно значение в bucket в отдельной транзакции
func (s *Storage) put(bucketName []byte, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}
		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

// get читает копию значения из bucket; nil означает отсутствие ключа
func (s *Storage) get(bucketName []byte, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		// Значение валидно только внутри транзакции, поэтому копируем
		if data := bucket.Get([]byte(key)); data != nil {
			value = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
