package repository

import (
	"context"

	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByIDWithProfessional(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
}
