package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/iudanet/gophstore/internal/client/api"
	"github.com/iudanet/gophstore/internal/client/storage"
	"github.com/iudanet/gophstore/internal/models"
	"github.com/iudanet/gophstore/internal/validation"
)

// ErrNotAuthenticated возвращается операциями, требующими активной сессии
var ErrNotAuthenticated = errors.New("not authenticated, please log in first")

// Store является единственным источником истины о том, кто залогинен
// и что лежит в его корзине. Каждая мутация вместе с записью снимка
// в хранилище выполняется под одним мьютексом, перекрывающиеся операции
// не теряют обновлений.
//
// Персистентность: сессия и корзины по владельцам. Активная корзина
// не хранится отдельно, она восстанавливается из снимка владельца
// (гостевого или пользовательского) при гидрации и логине.
type Store struct {
	api      *api.Client
	storage  storage.Storage
	mu       sync.Mutex
	clientID string
	session  *storage.Session
	cart     []models.CartLine
	lastErr  string
}

// New создает Store и синхронно гидрирует его из хранилища:
// client id, сохраненная сессия (если есть) и корзина текущего владельца.
func New(ctx context.Context, apiClient *api.Client, st storage.Storage) (*Store, error) {
	clientID, err := st.ClientID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get client id: %w", err)
	}

	s := &Store{
		api:      apiClient,
		storage:  st,
		clientID: clientID,
	}

	session, err := st.GetSession(ctx)
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	s.session = session

	cart, err := st.GetCart(ctx, s.ownerID())
	if err != nil && !errors.Is(err, storage.ErrCartNotFound) {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	s.cart = cart

	return s, nil
}

// ownerID возвращает ключ владельца активной корзины:
// decimal user id для залогиненного пользователя, client id для гостя.
// Вызывается под мьютексом (или до публикации Store).
func (s *Store) ownerID() string {
	if s.session != nil {
		return strconv.Itoa(s.session.User.ID)
	}
	return s.clientID
}

// Login аутентифицирует пользователя: логин, профиль, восстановление
// его корзины из снимка и запись сессии в хранилище.
// При любой ошибке прежнее состояние не меняется, кроме lastErr.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return s.fail(err)
	}
	if password == "" {
		return s.fail(fmt.Errorf("password cannot be empty"))
	}

	tokens, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return s.fail(err)
	}

	profile, err := s.api.Profile(ctx, tokens.AccessToken)
	if err != nil {
		return s.fail(fmt.Errorf("failed to fetch profile: %w", err))
	}

	session := &storage.Session{
		User: models.User{
			ID:     profile.ID,
			Name:   profile.Name,
			Email:  profile.Email,
			Avatar: profile.Avatar,
		},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokenExpiry(tokens.AccessToken),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Восстанавливаем корзину пользователя из его снимка
	cart, err := s.storage.GetCart(ctx, strconv.Itoa(profile.ID))
	if err != nil && !errors.Is(err, storage.ErrCartNotFound) {
		return s.failLocked(fmt.Errorf("failed to restore cart: %w", err))
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return s.failLocked(fmt.Errorf("failed to save session: %w", err))
	}

	s.session = session
	s.cart = cart
	s.lastErr = ""

	return nil
}

// Logout снимает снимок активной корзины под текущим владельцем, удаляет
// сохраненную сессию и переключает активную корзину на гостевую.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNotAuthenticated
	}

	// Снимок корзины пользователя, чтобы восстановить ее на следующем логине
	if err := s.storage.SaveCart(ctx, s.ownerID(), s.cart); err != nil {
		return s.failLocked(fmt.Errorf("failed to snapshot cart: %w", err))
	}

	if err := s.storage.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return s.failLocked(fmt.Errorf("failed to delete session: %w", err))
	}

	s.session = nil
	s.lastErr = ""

	// Активной становится гостевая корзина
	guestCart, err := s.storage.GetCart(ctx, s.clientID)
	if err != nil && !errors.Is(err, storage.ErrCartNotFound) {
		return s.failLocked(fmt.Errorf("failed to load guest cart: %w", err))
	}
	s.cart = guestCart

	return nil
}

// IsAuthenticated сообщает, есть ли активная сессия (без проверки
// срока действия токена, истечение обнаруживается реактивно)
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// User возвращает текущего пользователя или nil
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	u := s.session.User
	return &u
}

// Session возвращает копию снимка сессии или nil (для status)
func (s *Store) Session() *storage.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	sess := *s.session
	return &sess
}

// LastError возвращает последнее сохраненное сообщение об ошибке
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError очищает сохраненное сообщение об ошибке
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// expire сбрасывает недействительную сессию после отказа авторизации
// удаленного API: корзина снимается под владельцем, сохраненная сессия
// удаляется, активной становится гостевая корзина. Ошибки хранилища
// здесь не всплывают, сессия уже мертва.
func (s *Store) expire(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	_ = s.storage.SaveCart(ctx, s.ownerID(), s.cart)
	_ = s.storage.DeleteSession(ctx)
	s.session = nil

	guestCart, err := s.storage.GetCart(ctx, s.clientID)
	if err != nil {
		guestCart = nil
	}
	s.cart = guestCart
}

// fail записывает сообщение ошибки и возвращает ее же вызывающему:
// ошибка и отображается, и распространяется
func (s *Store) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failLocked(err)
}

func (s *Store) failLocked(err error) error {
	s.lastErr = err.Error()
	return err
}
