package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет допустимый формат email (без полного RFC 5322,
// достаточно для отсечения явно битого ввода до сетевого запроса)
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MinNameLen минимальная длина имени пользователя
	MinNameLen = 2
	// MaxNameLen максимальная длина имени пользователя
	MaxNameLen = 50
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 100
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxAvatarSize максимальный размер загружаемого аватара (5MB)
	MaxAvatarSize = 5 * 1024 * 1024
)

// ValidateEmail проверяет, что email выглядит корректным
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}

	return nil
}

// ValidateName проверяет отображаемое имя пользователя
// Длина: 2-50 символов
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) < MinNameLen {
		return fmt.Errorf("name must be at least %d characters long", MinNameLen)
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}

// ValidatePassword проверяет требования к паролю:
// минимум 8 символов, хотя бы одна строчная буква, одна заглавная и одна цифра
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit {
		return fmt.Errorf("password must contain at least one lowercase letter, one uppercase letter, and one digit")
	}

	return nil
}

// ValidatePasswordConfirmation проверяет совпадение пароля и подтверждения.
// Вызывается до любого сетевого запроса.
func ValidatePasswordConfirmation(password, confirmation string) error {
	if confirmation == "" {
		return fmt.Errorf("password confirmation cannot be empty")
	}

	if password != confirmation {
		return fmt.Errorf("passwords do not match")
	}

	return nil
}

// ValidateAvatarFile проверяет локальный файл аватара до загрузки:
// размер не более 5MB, content type image/*
func ValidateAvatarFile(size int64, contentType string) error {
	if size > MaxAvatarSize {
		return fmt.Errorf("file size must not exceed %d bytes (5MB)", int64(MaxAvatarSize))
	}

	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("file must be an image, got content type %q", contentType)
	}

	return nil
}
