package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/farmatrack/visitador/internal/client/api"
	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
	"github.com/farmatrack/visitador/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс сервиса авторизации.
type Service interface {
	// Login выполняет вход: обменивает учетные данные на пару токенов,
	// загружает профиль пользователя и атомарно сохраняет сессию.
	Login(ctx context.Context, username, password string) (*models.UserProfile, error)

	// Logout завершает сессию. Сервер уведомляется по возможности,
	// локальная сессия удаляется всегда.
	Logout(ctx context.Context) error

	// Status возвращает текущее состояние сессии без обращения к серверу.
	Status(ctx context.Context) (*Status, error)
}

// Status описывает локальное состояние сессии.
type Status struct {
	User          *models.UserProfile
	ExpiresAt     int64
	Authenticated bool
}

type service struct {
	apiClient httpclient.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации.
func NewService(apiClient httpclient.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	// 1. Обмениваем учетные данные на токены.
	tokens, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := httpclient.TokenExpiry(tokens.AccessToken, tokens.ExpiresIn, s.now())

	// 2. Сохраняем токены, чтобы запрос профиля прошел авторизацию.
	session := &storage.Session{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	// 3. Загружаем профиль. Login без профиля считаем неудавшимся:
	// частичную сессию откатываем.
	profile, err := s.apiClient.Profile(ctx)
	if err != nil {
		if delErr := s.sessions.DeleteSession(ctx); delErr != nil {
			s.logger.Warn("failed to roll back session", "error", delErr)
		}

		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	session.User = profile
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("login successful", "user", profile.Name)

	return profile, nil
}

func (s *service) Logout(ctx context.Context) error {
	// Уведомляем сервер по возможности. Оффлайн не мешает выходу.
	if err := s.apiClient.Logout(ctx); err != nil {
		s.logger.Warn("server logout failed, clearing local session anyway", "error", err)
	}

	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("logged out")

	return nil
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	session, err := s.sessions.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return &Status{}, nil
		}

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &Status{
		User:          session.User,
		ExpiresAt:     session.ExpiresAt,
		Authenticated: session.AccessToken != "" && !session.Expired(s.now()),
	}, nil
}
