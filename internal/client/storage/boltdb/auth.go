package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/farmatrack/visitador/internal/client/storage"
)

var sessionKey = []byte("current")

// SaveSession stores the session record atomically: the whole record is one
// JSON value written in one transaction, a failure leaves the previous
// session in place.
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	// Профиль без токена не сохраняем
	if session.User != nil && session.AccessToken == "" {
		return fmt.Errorf("refusing to save user profile without access token")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		// Сохраняем единой записью
		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})
}

// Session retrieves the stored session record
func (s *Storage) Session(ctx context.Context) (*storage.Session, error) {
	var session *storage.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Получаем данные
		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		// Десериализуем
		session = &storage.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateAccessToken replaces only the access token and expiry of the stored
// session, leaving refresh token and user data untouched. Read and write
// happen in one transaction.
func (s *Storage) UpdateAccessToken(ctx context.Context, accessToken string, expiresAt int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		session := &storage.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		// Меняем только токен и срок его жизни
		session.AccessToken = accessToken
		session.ExpiresAt = expiresAt

		updated, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		if err := bucket.Put(sessionKey, updated); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})
}

// DeleteSession removes the session record (logout). Deleting an absent
// session is not an error: clear must succeed even for a partially missing
// record.
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		return nil
	})
}

// IsAuthenticated checks if a session with a non-expired token exists
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.Session(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return false, nil
		}
		return false, err
	}

	if session.AccessToken == "" {
		return false, nil
	}

	// Проверяем, не истек ли токен
	if session.Expired(time.Now()) {
		return false, nil
	}

	return true, nil
}
