package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
	"github.com/farmatrack/visitador/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

const (
	apiPrefix      = "/api/v1"
	requestTimeout = 10 * time.Second
)

// ClientAPI — интерфейс HTTP клиента сервера farmatrack.
type ClientAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	Doctors(ctx context.Context) ([]models.Doctor, error)
	Doctor(ctx context.Context, id string) (*models.Doctor, error)
	Plans(ctx context.Context) ([]models.VisitPlan, error)
	UpdatePlan(ctx context.Context, planID string, change models.PlanChange) error
	PerformVisit(ctx context.Context, visit *models.VisitRecord) (*api.VisitReceipt, error)
	VisitHistory(ctx context.Context) ([]models.VisitRecord, error)
	CreateForm(ctx context.Context, form *models.SatisfactionForm) (*api.FormReceipt, error)
	Health(ctx context.Context) error
}

// Client реализует ClientAPI поверх net/http. Access token берется из
// SessionStorage перед каждым запросом; при 401 клиент прозрачно обновляет
// токен и повторяет запрос ровно один раз.
type Client struct {
	httpClient *http.Client
	sessions   storage.SessionStorage
	logger     *slog.Logger
	baseURL    string
	now        func() time.Time
}

var _ ClientAPI = (*Client)(nil)

func NewClient(baseURL string, sessions storage.SessionStorage, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		sessions:   sessions,
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/") + apiPrefix,
		now:        time.Now,
	}
}

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doPlain(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doAuthed(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doAuthed(ctx, http.MethodGet, "/auth/profile", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (c *Client) Doctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.doAuthed(ctx, http.MethodGet, "/doctors", nil, &doctors); err != nil {
		return nil, err
	}

	return doctors, nil
}

func (c *Client) Doctor(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.doAuthed(ctx, http.MethodGet, "/doctors/"+id, nil, &doctor); err != nil {
		return nil, err
	}

	return &doctor, nil
}

func (c *Client) Plans(ctx context.Context) ([]models.VisitPlan, error) {
	var plans []models.VisitPlan
	if err := c.doAuthed(ctx, http.MethodGet, "/plans", nil, &plans); err != nil {
		return nil, err
	}

	return plans, nil
}

func (c *Client) UpdatePlan(ctx context.Context, planID string, change models.PlanChange) error {
	return c.doAuthed(ctx, http.MethodPatch, "/plans/"+planID, change, nil)
}

func (c *Client) PerformVisit(ctx context.Context, visit *models.VisitRecord) (*api.VisitReceipt, error) {
	var receipt api.VisitReceipt
	if err := c.doAuthed(ctx, http.MethodPost, "/visits", visit, &receipt); err != nil {
		return nil, err
	}

	return &receipt, nil
}

func (c *Client) VisitHistory(ctx context.Context) ([]models.VisitRecord, error) {
	var visits []models.VisitRecord
	if err := c.doAuthed(ctx, http.MethodGet, "/visits", nil, &visits); err != nil {
		return nil, err
	}

	return visits, nil
}

func (c *Client) CreateForm(ctx context.Context, form *models.SatisfactionForm) (*api.FormReceipt, error) {
	var receipt api.FormReceipt
	if err := c.doAuthed(ctx, http.MethodPost, "/forms", form, &receipt); err != nil {
		return nil, err
	}

	return &receipt, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.doPlain(ctx, http.MethodGet, "/health", nil, nil)
}

// doPlain выполняет запрос без авторизации и без логики повтора.
func (c *Client) doPlain(ctx context.Context, method, path string, body, result any) error {
	status, respBody, err := c.send(ctx, method, path, "", body)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return apiErrorFrom(status, respBody)
	}

	return decodeResult(respBody, result)
}

func (c *Client) doAuthed(ctx context.Context, method, path string, body, result any) error {
	return c.attempt(ctx, method, path, body, result, false)
}

// attempt выполняет один авторизованный запрос. hasRetried — явный признак
// того, что запрос уже был повторен после обновления токена: повторяем
// максимум один раз, дальше 401 уходит вызывающему как есть.
func (c *Client) attempt(ctx context.Context, method, path string, body, result any, hasRetried bool) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	status, respBody, err := c.send(ctx, method, path, token, body)
	if err != nil {
		// Транспортная ошибка: повтор не поможет, вызывающий решает,
		// ставить ли операцию в offline очередь.
		return err
	}

	if status == http.StatusUnauthorized && !hasRetried {
		if refreshErr := c.refreshSession(ctx); refreshErr != nil {
			// Refresh не удался: принудительный выход из сессии.
			if clearErr := c.sessions.DeleteSession(ctx); clearErr != nil {
				c.logger.Warn("failed to clear session after refresh failure",
					"error", clearErr)
			}

			c.logger.Info("session expired, local session cleared")

			return fmt.Errorf("%w: %v", ErrSessionExpired, refreshErr)
		}

		return c.attempt(ctx, method, path, body, result, true)
	}

	if status < 200 || status >= 300 {
		return apiErrorFrom(status, respBody)
	}

	return decodeResult(respBody, result)
}

// send выполняет один HTTP запрос и возвращает статус с телом ответа.
// Любая транспортная ошибка заворачивается в *RequestError.
func (c *Client) send(ctx context.Context, method, path, token string, body any) (int, []byte, error) {
	var bodyReader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &RequestError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &RequestError{Err: err}
	}

	return resp.StatusCode, respBody, nil
}

// accessToken возвращает текущий access token или пустую строку, если сессии
// нет. Отсутствие токена не ошибка: сервер сам отклонит запрос, если
// авторизация обязательна.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("failed to load session: %w", err)
	}

	return session.AccessToken, nil
}

// refreshSession обменивает refresh token на новую пару и сохраняет
// обновленный access token в хранилище сессии.
func (c *Client) refreshSession(ctx context.Context) error {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if session.RefreshToken == "" {
		return errors.New("no refresh token")
	}

	var resp api.TokenResponse

	req := api.RefreshRequest{RefreshToken: session.RefreshToken}
	if err := c.doPlain(ctx, http.MethodPost, "/auth/refresh", req, &resp); err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}

	if resp.AccessToken == "" {
		return errors.New("refresh response has no access token")
	}

	expiresAt := TokenExpiry(resp.AccessToken, resp.ExpiresIn, c.now())
	if err := c.sessions.UpdateAccessToken(ctx, resp.AccessToken, expiresAt); err != nil {
		return fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	c.logger.Debug("access token refreshed")

	return nil
}

// TokenExpiry вычисляет unix время истечения access token. Приоритет:
// expires_in из ответа сервера, иначе exp claim из самого JWT (без проверки
// подписи — токен нужен только для локального планирования), иначе 0.
func TokenExpiry(token string, expiresIn int64, now time.Time) int64 {
	if expiresIn > 0 {
		return now.Unix() + expiresIn
	}

	claims := jwt.MapClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}

	return exp.Unix()
}

func apiErrorFrom(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Message = errResp.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}

func decodeResult(body []byte, result any) error {
	if result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
