package storage

import (
	"context"
	"time"

	"github.com/farmatrack/visitador/internal/models"
)

//go:generate moq -out auth_mock.go . SessionStorage

// SessionStorage defines interface for storing the authenticated session on client.
// The session is one serialized record: save is all-or-nothing, a failed write
// leaves the previous session untouched.
type SessionStorage interface {
	// SaveSession stores the whole session record atomically.
	// Rejects a record with a user profile but no access token.
	SaveSession(ctx context.Context, session *Session) error

	// Session retrieves the stored session record.
	// Returns ErrSessionNotFound if no session exists.
	Session(ctx context.Context) (*Session, error)

	// UpdateAccessToken replaces only the access token and its expiry,
	// leaving refresh token and user data untouched (token refresh).
	// Returns ErrSessionNotFound if no session exists.
	UpdateAccessToken(ctx context.Context, accessToken string, expiresAt int64) error

	// DeleteSession removes the session record unconditionally (logout).
	// Deleting an absent session is not an error.
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if a session with a non-expired token exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// Session represents the authenticated session in storage.
// Инвариант: User != nil влечет AccessToken != "" - профиль никогда
// не хранится без токена.
type Session struct {
	User         *models.UserProfile `json:"user,omitempty"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token,omitempty"`
	ExpiresAt    int64               `json:"expires_at"` // unix seconds, 0 = неизвестно
}

// Expired сообщает, истек ли access token к моменту now.
// Нулевой ExpiresAt означает, что срок неизвестен и токен считается живым.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && now.Unix() > s.ExpiresAt
}
