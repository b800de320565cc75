package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session record exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrCacheEntryNotFound indicates that cache entry was not found
	ErrCacheEntryNotFound = errors.New("cache entry not found")

	// ErrOperationNotFound indicates that pending operation was not found
	ErrOperationNotFound = errors.New("pending operation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
