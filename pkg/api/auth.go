package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только поверх TLS)
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token (хранится, но не обменивается)
}

// UserResponse представляет запись пользователя, как ее возвращает API
// (GET /auth/profile, POST /users/, PUT /users/{id})
type UserResponse struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ErrorResponse представляет тело ошибки удаленного API
type ErrorResponse struct {
	Message    string `json:"message"`    // описание ошибки
	StatusCode int    `json:"statusCode"` // дублирует HTTP статус
}
