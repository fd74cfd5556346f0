package repository

import (
	"context"

	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	// FindByUserID returns one page of a user's audit trail, newest first
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, page entity.PageRequest) ([]entity.AuditLog, int64, error)
}
