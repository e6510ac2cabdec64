package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	clientapi "github.com/iudanet/gophstore/internal/client/api"
	"github.com/iudanet/gophstore/internal/validation"
	"github.com/iudanet/gophstore/pkg/api"
)

// UpdateProfile отправляет частичное обновление профиля и мержит ответ
// сервера в сохраненную сессию. ErrSessionExpired от клиента API
// распространяется как есть.
func (s *Store) UpdateProfile(ctx context.Context, upd api.UpdateUserRequest) error {
	if upd.Name != "" {
		if err := validation.ValidateName(upd.Name); err != nil {
			return s.fail(err)
		}
	}
	if upd.Email != "" {
		if err := validation.ValidateEmail(upd.Email); err != nil {
			return s.fail(err)
		}
	}

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	token := s.session.AccessToken
	userID := s.session.User.ID
	s.mu.Unlock()

	// Сетевой вызов без мьютекса: запрос может длиться долго
	updated, err := s.api.UpdateUser(ctx, token, userID, upd)
	if err != nil {
		if errors.Is(err, clientapi.ErrSessionExpired) {
			s.expire(ctx)
		}
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.User.ID != userID {
		// Сессия сменилась, пока шел запрос — устаревший ответ не применяем
		return nil
	}

	if updated.Name != "" {
		s.session.User.Name = updated.Name
	}
	if updated.Email != "" {
		s.session.User.Email = updated.Email
	}
	if updated.Avatar != "" {
		s.session.User.Avatar = updated.Avatar
	}

	if err := s.storage.SaveSession(ctx, s.session); err != nil {
		return s.failLocked(fmt.Errorf("failed to save session: %w", err))
	}

	s.lastErr = ""
	return nil
}

// UpdatePassword меняет пароль. Политика пароля и совпадение подтверждения
// проверяются локально, при нарушении сетевой запрос не выполняется.
func (s *Store) UpdatePassword(ctx context.Context, current, password, confirmation string) error {
	if current == "" {
		return s.fail(fmt.Errorf("current password cannot be empty"))
	}
	if err := validation.ValidatePassword(password); err != nil {
		return s.fail(err)
	}
	if err := validation.ValidatePasswordConfirmation(password, confirmation); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	token := s.session.AccessToken
	userID := s.session.User.ID
	s.mu.Unlock()

	if _, err := s.api.UpdateUser(ctx, token, userID, api.UpdateUserRequest{Password: password}); err != nil {
		if errors.Is(err, clientapi.ErrSessionExpired) {
			s.expire(ctx)
		}
		return s.fail(err)
	}

	s.ClearError()
	return nil
}

// UploadAvatar валидирует локальный файл (размер не более 5MB, content type
// image/*) и при успехе загружает его, возвращая публичный URL.
// Нарушение валидации отказывает быстро, без сетевого вызова.
func (s *Store) UploadAvatar(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", s.fail(fmt.Errorf("failed to open file: %w", err))
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return "", s.fail(fmt.Errorf("failed to stat file: %w", err))
	}

	// Определяем content type по первым 512 байтам
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", s.fail(fmt.Errorf("failed to read file: %w", err))
	}
	contentType := http.DetectContentType(head[:n])

	if err := validation.ValidateAvatarFile(info.Size(), contentType); err != nil {
		return "", s.fail(err)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return "", s.fail(fmt.Errorf("failed to rewind file: %w", err))
	}

	location, err := s.api.UploadFile(ctx, info.Name(), f)
	if err != nil {
		return "", s.fail(err)
	}

	s.ClearError()
	return location, nil
}
