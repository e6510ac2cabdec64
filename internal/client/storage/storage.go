package storage

import (
	"context"

	"github.com/iudanet/gophstore/internal/models"
)

// Session представляет персистентный снимок сессии пользователя.
// Токены хранятся как выданы сервером; ExpiresAt берется из exp claim
// access token без верификации подписи (0, если claim отсутствует).
type Session struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresAt    int64       `json:"expires_at"`
}

// SessionStorage defines interface for the persisted session snapshot.
// At most one session exists at a time.
type SessionStorage interface {
	// SaveSession stores the session snapshot, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error

	// ClientID returns the stable per-database client identifier,
	// generating and persisting it on first call. It keys the guest cart.
	ClientID(ctx context.Context) (string, error)
}

// CartStorage defines interface for per-owner cart snapshots.
// Owner is the decimal user id for authenticated carts, or the client id
// for the guest cart.
type CartStorage interface {
	// SaveCart stores the cart lines for the owner, replacing the snapshot
	SaveCart(ctx context.Context, owner string, lines []models.CartLine) error

	// GetCart retrieves the cart snapshot for the owner
	// Returns ErrCartNotFound if the owner has no snapshot
	GetCart(ctx context.Context, owner string) ([]models.CartLine, error)

	// DeleteCart removes the cart snapshot for the owner
	DeleteCart(ctx context.Context, owner string) error
}

// Storage объединяет обе стороны клиентского хранилища
type Storage interface {
	SessionStorage
	CartStorage
}
