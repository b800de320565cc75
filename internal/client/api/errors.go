package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired возвращается, когда refresh токена не удался и локальная
// сессия была очищена. Вызывающий должен запросить повторный login.
var ErrSessionExpired = errors.New("session expired")

// APIError — сервер принял запрос и ответил не-2xx статусом.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// RequestError — транспортная ошибка: ответа от сервера не было вообще
// (нет сети, таймаут, DNS). Такие запросы безопасно ставить в offline очередь.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err means the server could not be reached at
// all. This is the signal to fall back to the offline queue.
func IsUnavailable(err error) bool {
	var reqErr *RequestError

	return errors.As(err, &reqErr)
}

// IsRejection reports whether err is a definitive 4xx server rejection.
// Retrying such a request without changing it will not help.
func IsRejection(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}

	return false
}
