package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenKind separates access and refresh token namespaces in the store
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access_token"
	TokenKindRefresh TokenKind = "refresh_token"
)

// TokenRepository tracks issued tokens so they can be revoked before expiry
type TokenRepository interface {
	Save(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
	Delete(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
