// Package cache реализует TTL кэш поверх долговременного хранилища.
// Протухшие записи не удаляются при записи новых: они служат fallback
// данными, когда сервер недоступен.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/farmatrack/visitador/internal/client/storage"
)

// Стандартные TTL профили для разных классов данных.
const (
	TTLShort    = 5 * time.Minute  // быстро меняющиеся данные (планы на день)
	TTLMedium   = 30 * time.Minute // списки врачей, история визитов
	TTLLong     = 2 * time.Hour    // справочники
	TTLVeryLong = 24 * time.Hour   // профиль пользователя
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс TTL кэша.
type Service interface {
	// Put сохраняет значение с заданным TTL. Ошибка записи на диск не
	// фатальна: значение просто не переживет перезапуск.
	Put(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get возвращает закэшированное значение, если оно еще действительно.
	// Протухшая запись удаляется, возвращается ErrMiss.
	Get(ctx context.Context, key string, target any) error

	// GetOrFetch возвращает действительное значение из кэша либо вызывает
	// fetch. Если fetch не удался, а протухшая запись есть, возвращает её
	// c пометкой Stale.
	GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (*Lookup, error)

	// Invalidate удаляет запись независимо от её срока
	Invalidate(ctx context.Context, key string) error

	// InvalidatePrefix удаляет все записи с ключами, начинающимися с prefix
	InvalidatePrefix(ctx context.Context, prefix string) error

	// ClearExpired удаляет все протухшие записи и возвращает их количество
	ClearExpired(ctx context.Context) (int, error)

	// Clear удаляет все записи
	Clear(ctx context.Context) error

	// Stats возвращает сводку по содержимому кэша
	Stats(ctx context.Context) (*Stats, error)
}

// ErrMiss возвращается, когда действительной записи по ключу нет.
var ErrMiss = errors.New("cache miss")

// FetchFunc загружает свежее значение для GetOrFetch.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// Lookup описывает результат GetOrFetch.
type Lookup struct {
	Data      json.RawMessage
	FromCache bool // значение взято из кэша, а не из fetch
	Stale     bool // значение протухло, отдано как fallback
}

// Stats содержит сводку по содержимому кэша.
type Stats struct {
	Entries   int
	Expired   int
	TotalSize int // суммарный размер сериализованных данных в байтах
}

type service struct {
	store  storage.CacheStorage
	logger *slog.Logger
	now    func() time.Time

	mu  sync.Mutex
	mem map[string]*storage.CacheEntry // записи, не дошедшие до диска
}

// NewService создает новый сервис кэша.
func NewService(store storage.CacheStorage, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger,
		now:    time.Now,
		mem:    make(map[string]*storage.CacheEntry),
	}
}

func (s *service) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	if key == "" {
		return errors.New("cache key is required")
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", ttl)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	now := s.now()
	entry := &storage.CacheEntry{
		Key:       key,
		Data:      data,
		TTL:       ttl,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.store.SaveEntry(ctx, entry); err != nil {
		// Кэш — не источник истины: не роняем операцию из-за диска,
		// но последнюю запись держим в памяти до перезапуска.
		s.logger.Warn("failed to persist cache entry, keeping in memory",
			"key", key, "error", err)

		s.remember(entry)

		return nil
	}

	s.forget(key)

	return nil
}

func (s *service) remember(entry *storage.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem[entry.Key] = entry
}

func (s *service) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.mem, key)
}

// entry читает запись, отдавая приоритет памяти: там лежит последняя
// запись, которую не удалось сохранить на диск.
func (s *service) entry(ctx context.Context, key string) (*storage.CacheEntry, error) {
	s.mu.Lock()
	if entry, ok := s.mem[key]; ok {
		s.mu.Unlock()

		return entry, nil
	}
	s.mu.Unlock()

	return s.store.Entry(ctx, key)
}

func (s *service) Get(ctx context.Context, key string, target any) error {
	entry, err := s.entry(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrCacheEntryNotFound) {
			return ErrMiss
		}

		return fmt.Errorf("failed to read cache entry: %w", err)
	}

	if !entry.Valid(s.now()) {
		// Ленивое вытеснение: протухшую запись убираем при обращении.
		s.forget(key)

		if err := s.store.DeleteEntry(ctx, key); err != nil {
			s.logger.Warn("failed to evict expired cache entry", "key", key, "error", err)
		}

		return ErrMiss
	}

	if err := json.Unmarshal(entry.Data, target); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (s *service) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (*Lookup, error) {
	entry, err := s.entry(ctx, key)
	if err != nil && !errors.Is(err, storage.ErrCacheEntryNotFound) {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if entry != nil && entry.Valid(s.now()) {
		return &Lookup{Data: entry.Data, FromCache: true}, nil
	}

	// Протухшую запись не трогаем до исхода fetch: она может понадобиться
	// как fallback.
	data, fetchErr := fetch(ctx)
	if fetchErr == nil {
		if err := s.Put(ctx, key, json.RawMessage(data), ttl); err != nil {
			return nil, err
		}

		return &Lookup{Data: data}, nil
	}

	if entry != nil {
		s.logger.Warn("fetch failed, serving stale cache entry",
			"key", key, "error", fetchErr)

		return &Lookup{Data: entry.Data, FromCache: true, Stale: true}, nil
	}

	return nil, fmt.Errorf("fetch failed and no cached value for %q: %w", key, fetchErr)
}

func (s *service) Invalidate(ctx context.Context, key string) error {
	s.forget(key)

	if err := s.store.DeleteEntry(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate %q: %w", key, err)
	}

	return nil
}

func (s *service) InvalidatePrefix(ctx context.Context, prefix string) error {
	s.mu.Lock()
	for key := range s.mem {
		if strings.HasPrefix(key, prefix) {
			delete(s.mem, key)
		}
	}
	s.mu.Unlock()

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cache keys: %w", err)
	}

	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			if err := s.store.DeleteEntry(ctx, key); err != nil {
				return fmt.Errorf("failed to invalidate %q: %w", key, err)
			}
		}
	}

	return nil
}

func (s *service) ClearExpired(ctx context.Context) (int, error) {
	meta, err := s.store.Metadata(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache metadata: %w", err)
	}

	now := s.now()
	removed := 0

	s.mu.Lock()
	for key, entry := range s.mem {
		if !entry.Valid(now) {
			delete(s.mem, key)

			if _, onDisk := meta[key]; !onDisk {
				removed++
			}
		}
	}
	s.mu.Unlock()

	for key, m := range meta {
		if now.After(m.ExpiresAt) {
			if err := s.store.DeleteEntry(ctx, key); err != nil {
				return removed, fmt.Errorf("failed to remove %q: %w", key, err)
			}

			removed++
		}
	}

	if removed > 0 {
		s.logger.Info("removed expired cache entries", "count", removed)
	}

	return removed, nil
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	clear(s.mem)
	s.mu.Unlock()

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cache keys: %w", err)
	}

	for _, key := range keys {
		if err := s.store.DeleteEntry(ctx, key); err != nil {
			return fmt.Errorf("failed to remove %q: %w", key, err)
		}
	}

	return nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	meta, err := s.store.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache metadata: %w", err)
	}

	now := s.now()
	stats := &Stats{}

	for _, m := range meta {
		stats.Entries++
		stats.TotalSize += m.Size

		if now.After(m.ExpiresAt) {
			stats.Expired++
		}
	}

	return stats, nil
}
