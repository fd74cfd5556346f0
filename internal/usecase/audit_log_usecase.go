package usecase

import (
	"context"

	"mentecare-backend/internal/converter"
	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	// ListActivity returns the caller's own audit trail, newest first
	ListActivity(ctx context.Context, userID uuid.UUID, rawPage, rawLimit string) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListActivity(ctx context.Context, userID uuid.UUID, rawPage, rawLimit string) (*dto.AuditLogListResponse, error) {
	page, verr := parsePageRequest(rawPage, rawLimit)
	if verr != nil {
		return nil, verr
	}

	logs, total, err := u.auditLogRepo.FindByUserID(ctx, u.db, userID, page)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:       converter.AuditLogsToResponses(logs),
		Pagination: converter.PaginationToResponse(entity.NewPagination(page, total)),
	}, nil
}
