package repository

import (
	"context"

	"mentecare-backend/internal/domain/entity"
	domainRepo "mentecare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Omit("User").Create(log).Error
}

func (r *auditLogRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, page entity.PageRequest) ([]entity.AuditLog, int64, error) {
	var (
		logs  []entity.AuditLog
		total int64
	)

	byUser := func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}

	if err := db.WithContext(ctx).Model(&entity.AuditLog{}).Scopes(byUser).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).
		Scopes(byUser).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	if logs == nil {
		logs = []entity.AuditLog{}
	}
	return logs, total, nil
}
