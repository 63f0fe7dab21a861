package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the Unix timestamp of the last completed sync pass
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the timestamp of the last completed sync pass
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// AddPendingPush marks a local quote as not yet acknowledged by the remote source
	AddPendingPush(ctx context.Context, id string) error

	// RemovePendingPush clears the pending mark after a successful push
	RemovePendingPush(ctx context.Context, id string) error

	// GetPendingPushes returns pending quote ids in the order they were added
	GetPendingPushes(ctx context.Context) ([]string, error)

	// HasImportHash reports whether content with this hash was already imported
	HasImportHash(ctx context.Context, hash string) (bool, error)

	// SaveImportHash remembers the hash of imported content
	SaveImportHash(ctx context.Context, hash string) error
}
