package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/farmatrack/visitador/internal/client/storage"
)

var cacheMetaKey = []byte("index")

// SaveEntry stores a cache entry and updates the aggregate metadata index
// in the same transaction, so entry and index never diverge.
func (s *Storage) SaveEntry(ctx context.Context, entry *storage.CacheEntry) error {
	if entry == nil || entry.Key == "" {
		return fmt.Errorf("cache entry key is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		// Сериализуем entry
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal cache entry: %w", err)
		}

		if err := bucket.Put([]byte(entry.Key), data); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}

		// Обновляем агрегированный индекс
		index, err := readMetaIndex(tx)
		if err != nil {
			return err
		}
		index[entry.Key] = storage.EntryMeta{
			StoredAt:  entry.StoredAt,
			ExpiresAt: entry.ExpiresAt,
			Size:      len(entry.Data),
		}

		return writeMetaIndex(tx, index)
	})
}

// Entry retrieves a stored cache entry regardless of expiry.
// Проверка срока жизни - ответственность слоя кеша, не хранилища:
// истекший entry нужен как stale fallback при недоступном сервере.
func (s *Storage) Entry(ctx context.Context, key string) (*storage.CacheEntry, error) {
	var entry *storage.CacheEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrCacheEntryNotFound
		}

		entry = &storage.CacheEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes an entry and its index record. Deleting an absent
// entry is not an error.
func (s *Storage) DeleteEntry(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete cache entry: %w", err)
		}

		index, err := readMetaIndex(tx)
		if err != nil {
			return err
		}
		delete(index, key)

		return writeMetaIndex(tx, index)
	})
}

// Keys returns all cache keys currently stored
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return keys, nil
}

// Metadata returns the aggregate index of stored entries
func (s *Storage) Metadata(ctx context.Context) (map[string]storage.EntryMeta, error) {
	var index map[string]storage.EntryMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		index, err = readMetaIndex(tx)
		return err
	})

	if err != nil {
		return nil, err
	}

	return index, nil
}

// readMetaIndex читает агрегированный индекс кеша из bucket cache_meta
func readMetaIndex(tx *bbolt.Tx) (map[string]storage.EntryMeta, error) {
	bucket := tx.Bucket(bucketCacheMeta)
	if bucket == nil {
		return nil, fmt.Errorf("cache_meta bucket not found")
	}

	data := bucket.Get(cacheMetaKey)
	if data == nil {
		return make(map[string]storage.EntryMeta), nil
	}

	index := make(map[string]storage.EntryMeta)
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache metadata: %w", err)
	}

	return index, nil
}

// writeMetaIndex записывает агрегированный индекс кеша
func writeMetaIndex(tx *bbolt.Tx, index map[string]storage.EntryMeta) error {
	bucket := tx.Bucket(bucketCacheMeta)
	if bucket == nil {
		return fmt.Errorf("cache_meta bucket not found")
	}

	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal cache metadata: %w", err)
	}

	if err := bucket.Put(cacheMetaKey, data); err != nil {
		return fmt.Errorf("failed to save cache metadata: %w", err)
	}

	return nil
}
