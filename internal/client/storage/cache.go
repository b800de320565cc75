package storage

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage defines interface for the durable TTL cache layer.
// Entries are written together with an aggregate metadata index
// (key -> size/expiry) used for cache statistics.
type CacheStorage interface {
	// SaveEntry stores a cache entry, overwriting any previous entry
	// for the same key. Entry and metadata index are updated atomically.
	SaveEntry(ctx context.Context, entry *CacheEntry) error

	// Entry retrieves the stored entry regardless of expiry.
	// Returns ErrCacheEntryNotFound if no entry exists.
	Entry(ctx context.Context, key string) (*CacheEntry, error)

	// DeleteEntry removes an entry and its metadata.
	// Deleting an absent entry is not an error.
	DeleteEntry(ctx context.Context, key string) error

	// Keys returns all cache keys currently stored
	Keys(ctx context.Context) ([]string, error)

	// Metadata returns the aggregate index of stored entries
	Metadata(ctx context.Context) (map[string]EntryMeta, error)
}

// CacheEntry represents one cached value with its expiry metadata.
// Инвариант: ExpiresAt == StoredAt + TTL.
type CacheEntry struct {
	StoredAt  time.Time       `json:"stored_at"`
	ExpiresAt time.Time       `json:"expires_at"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	TTL       time.Duration   `json:"ttl"`
}

// Valid сообщает, действителен ли entry к моменту now
func (e *CacheEntry) Valid(now time.Time) bool {
	return !now.After(e.ExpiresAt)
}

// EntryMeta represents one record of the aggregate cache index
type EntryMeta struct {
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Size      int       `json:"size"` // размер сериализованных данных в байтах
}
