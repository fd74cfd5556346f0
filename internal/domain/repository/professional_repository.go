package repository

import (
	"context"

	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Professional, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Professional, error)
	// Search returns one ranked page of gated professionals matching filter,
	// plus the total number of matches.
	Search(ctx context.Context, db *gorm.DB, filter *entity.ProfessionalFilter, page entity.PageRequest) ([]entity.Professional, int64, error)
	FindSpecialties(ctx context.Context, db *gorm.DB) ([]string, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) error
}
