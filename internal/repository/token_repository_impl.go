package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "mentecare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type tokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) domainRepo.TokenRepository {
	return &tokenRepository{client: client}
}

func tokenKey(kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID.String(), tokenID)
}

func (r *tokenRepository) Save(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, tokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (r *tokenRepository) Exists(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *tokenRepository) Delete(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) error {
	return r.client.Del(ctx, tokenKey(kind, userID, tokenID)).Err()
}

// DeleteAllForUser removes every access and refresh token of a user.
// SCAN is used instead of KEYS so large keyspaces do not block redis.
func (r *tokenRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	for _, kind := range []domainRepo.TokenKind{domainRepo.TokenKindAccess, domainRepo.TokenKindRefresh} {
		pattern := tokenKey(kind, userID, "*")
		iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()

		pipe := r.client.Pipeline()
		for iter.Next(ctx) {
			pipe.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if pipe.Len() > 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
