package storage

import "errors"

// Common client storage errors
var (
	// ErrQuotesNotFound indicates that no quote sequence has been stored yet
	ErrQuotesNotFound = errors.New("quotes not found")

	// ErrFilterNotFound indicates that no category filter has been stored yet
	ErrFilterNotFound = errors.New("category filter not found")

	// ErrLastQuoteNotFound indicates that no quote was shown in the current session
	ErrLastQuoteNotFound = errors.New("last quote not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
