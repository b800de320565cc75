package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
	"github.com/farmatrack/visitador/pkg/api"
)

// sessionStoreStub — хранилище сессии в памяти для тестов клиента.
type sessionStoreStub struct {
	session *storage.Session
}

func (s *sessionStoreStub) SaveSession(_ context.Context, session *storage.Session) error {
	s.session = session

	return nil
}

func (s *sessionStoreStub) Session(_ context.Context) (*storage.Session, error) {
	if s.session == nil {
		return nil, storage.ErrSessionNotFound
	}

	return s.session, nil
}

func (s *sessionStoreStub) UpdateAccessToken(_ context.Context, token string, expiresAt int64) error {
	if s.session == nil {
		return storage.ErrSessionNotFound
	}

	s.session.AccessToken = token
	s.session.ExpiresAt = expiresAt

	return nil
}

func (s *sessionStoreStub) DeleteSession(_ context.Context) error {
	s.session = nil

	return nil
}

func (s *sessionStoreStub) IsAuthenticated(_ context.Context) (bool, error) {
	return s.session != nil && s.session.AccessToken != "", nil
}

func newTestClient(serverURL string, sessions storage.SessionStorage) *Client {
	return NewClient(serverURL, sessions, slog.New(slog.NewTextHandler(testWriter{}, nil)))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestClientLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "maria", req.Username)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			TokenType:    "Bearer",
			ExpiresIn:    900,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStoreStub{})

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Username: "maria",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-1", resp.AccessToken)
	assert.Equal(t, "refresh-1", resp.RefreshToken)
}

func TestClientAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Doctor{{ID: "doc-1", Name: "Dr. Rojas"}})
	}))
	defer server.Close()

	sessions := &sessionStoreStub{session: &storage.Session{AccessToken: "access-1"}}
	client := newTestClient(server.URL, sessions)

	doctors, err := client.Doctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "doc-1", doctors[0].ID)
}

func TestClientRefreshAndRetryOn401(t *testing.T) {
	var doctorsCalls, refreshCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/doctors":
			doctorsCalls++
			if r.Header.Get("Authorization") != "Bearer access-new" {
				w.WriteHeader(http.StatusUnauthorized)

				return
			}

			_ = json.NewEncoder(w).Encode([]models.Doctor{{ID: "doc-1"}})
		case "/api/v1/auth/refresh":
			refreshCalls++

			var req api.RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.RefreshToken)

			_ = json.NewEncoder(w).Encode(api.TokenResponse{
				AccessToken: "access-new",
				ExpiresIn:   900,
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sessions := &sessionStoreStub{session: &storage.Session{
		AccessToken:  "access-stale",
		RefreshToken: "refresh-1",
	}}
	client := newTestClient(server.URL, sessions)

	doctors, err := client.Doctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	// Исходный запрос, refresh, повтор — и ничего больше.
	assert.Equal(t, 2, doctorsCalls)
	assert.Equal(t, 1, refreshCalls)

	// Обновленный токен сохранен в хранилище.
	assert.Equal(t, "access-new", sessions.session.AccessToken)
	assert.NotZero(t, sessions.session.ExpiresAt)
}

func TestClientRefreshRejectedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/doctors":
			w.WriteHeader(http.StatusUnauthorized)
		case "/api/v1/auth/refresh":
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "refresh token revoked"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sessions := &sessionStoreStub{session: &storage.Session{
		AccessToken:  "access-stale",
		RefreshToken: "refresh-revoked",
	}}
	client := newTestClient(server.URL, sessions)

	_, err := client.Doctors(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)

	// Сессия очищена: следующая команда потребует login.
	assert.Nil(t, sessions.session)
}

func TestClientRetriesAtMostOnce(t *testing.T) {
	var doctorsCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/doctors":
			doctorsCalls++
			// Сервер упорно отвечает 401 даже со свежим токеном.
			w.WriteHeader(http.StatusUnauthorized)
		case "/api/v1/auth/refresh":
			_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "access-new"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sessions := &sessionStoreStub{session: &storage.Session{
		AccessToken:  "access-stale",
		RefreshToken: "refresh-1",
	}}
	client := newTestClient(server.URL, sessions)

	_, err := client.Doctors(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	assert.Equal(t, 2, doctorsCalls)
}

func TestClientNoRefreshTokenClearsSession(t *testing.T) {
	var refreshCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/refresh" {
			refreshCalls++
		}

		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sessions := &sessionStoreStub{session: &storage.Session{AccessToken: "access-stale"}}
	client := newTestClient(server.URL, sessions)

	_, err := client.Doctors(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, sessions.session)
	assert.Zero(t, refreshCalls)
}

func TestClientTransportErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // сервер недоступен

	sessions := &sessionStoreStub{session: &storage.Session{AccessToken: "access-1"}}
	client := newTestClient(server.URL, sessions)

	_, err := client.Doctors(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsRejection(err))
}

func TestClientServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "rating out of range"})
	}))
	defer server.Close()

	sessions := &sessionStoreStub{session: &storage.Session{AccessToken: "access-1"}}
	client := newTestClient(server.URL, sessions)

	_, err := client.CreateForm(context.Background(), &models.SatisfactionForm{VisitID: "v1"})
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.False(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "rating out of range")
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expires_in has priority", func(t *testing.T) {
		got := TokenExpiry("not-a-jwt", 900, now)
		assert.Equal(t, now.Unix()+900, got)
	})

	t.Run("falls back to exp claim", func(t *testing.T) {
		exp := now.Add(time.Hour)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user-1",
			"exp": exp.Unix(),
		})

		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		got := TokenExpiry(signed, 0, now)
		assert.Equal(t, exp.Unix(), got)
	})

	t.Run("unparsable token gives zero", func(t *testing.T) {
		assert.Zero(t, TokenExpiry("garbage", 0, now))
	})
}
