package api

// CreateUserRequest представляет запрос на регистрацию нового пользователя
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}

// UpdateUserRequest представляет частичное обновление пользователя.
// Пустые поля не сериализуются и не затирают данные на сервере.
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"password,omitempty"`
}
