package models

// User представляет аутентифицированного пользователя магазина
type User struct {
	ID     int    `json:"id"`               // идентификатор из удаленного API
	Name   string `json:"name"`             // отображаемое имя
	Email  string `json:"email"`            // email (логин)
	Avatar string `json:"avatar,omitempty"` // URL аватара
}
