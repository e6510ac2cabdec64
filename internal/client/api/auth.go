package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/gophstore/pkg/api"
)

// SignIn выполняет аутентификацию пользователя по email и паролю
func (c *Client) SignIn(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	req := api.LoginRequest{Email: email, Password: password}

	var resp api.TokenResponse
	if err := c.doRequest(ctx, "POST", "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Profile получает запись текущего пользователя по access token
func (c *Client) Profile(ctx context.Context, accessToken string) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, "GET", "/auth/profile", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req api.CreateUserRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, "POST", "/users/", "", req, &resp); err != nil {
		return nil, fmt.Errorf("sign up request failed: %w", err)
	}
	return &resp, nil
}

// UpdateUser обновляет профиль или пароль пользователя.
// 401 нормализуется в ErrSessionExpired: сохраненный токен протух,
// пользователю нужно залогиниться заново.
func (c *Client) UpdateUser(ctx context.Context, accessToken string, id int, req api.UpdateUserRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	url := fmt.Sprintf("/users/%d", id)
	err := c.doRequest(ctx, "PUT", url, accessToken, req, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &resp, nil
}
