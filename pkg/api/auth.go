package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // логин визитадора
	Password string `json:"password"` // пароль (не сохраняется на клиенте)
}

// TokenResponse представляет ответ с токенами доступа
// refresh_token опционален: сервер может работать только с access token
type TokenResponse struct {
	AccessToken  string `json:"access_token"`            // JWT access token
	TokenType    string `json:"token_type,omitempty"`    // обычно "bearer"
	RefreshToken string `json:"refresh_token,omitempty"` // refresh token (может отсутствовать)
	ExpiresIn    int64  `json:"expires_in,omitempty"`    // время жизни access token в секундах
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // краткий код ошибки
	Message string `json:"message,omitempty"` // человекочитаемое сообщение
}
