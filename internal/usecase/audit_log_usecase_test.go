package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeAuditLogRepository struct {
	logs     []entity.AuditLog
	lastPage entity.PageRequest
}

func (r *fakeAuditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	log.ID = int64(len(r.logs) + 1)
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditLogRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, page entity.PageRequest) ([]entity.AuditLog, int64, error) {
	r.lastPage = page
	var mine []entity.AuditLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].UserID != nil && *r.logs[i].UserID == userID {
			mine = append(mine, r.logs[i])
		}
	}
	start := min(page.Offset(), len(mine))
	end := min(start+page.Limit, len(mine))
	return append([]entity.AuditLog{}, mine[start:end]...), int64(len(mine)), nil
}

func TestListActivityPaginatesOwnEntries(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()
	repo := &fakeAuditLogRepository{}
	for _, action := range []string{entity.AuditActionUserRegister, entity.AuditActionProfileUpdate, entity.AuditActionUserPasswordChange} {
		repo.Create(context.Background(), nil, &entity.AuditLog{UserID: &userID, Action: action, CreatedAt: time.Now()})
	}
	repo.Create(context.Background(), nil, &entity.AuditLog{UserID: &other, Action: entity.AuditActionUserRegister})

	uc := NewAuditLogUsecase(nil, discardLogger(), repo)

	res, err := uc.ListActivity(context.Background(), userID, "1", "2")
	if err != nil {
		t.Fatalf("ListActivity: %v", err)
	}
	if len(res.Logs) != 2 || res.Logs[0].Action != entity.AuditActionUserPasswordChange {
		t.Fatalf("unexpected logs: %+v", res.Logs)
	}
	if res.Pagination.TotalItems != 3 || res.Pagination.TotalPages != 2 || !res.Pagination.HasNextPage {
		t.Fatalf("unexpected pagination: %+v", res.Pagination)
	}
}

func TestListActivityDefaultsAndValidation(t *testing.T) {
	repo := &fakeAuditLogRepository{}
	uc := NewAuditLogUsecase(nil, discardLogger(), repo)

	res, err := uc.ListActivity(context.Background(), uuid.New(), "", "")
	if err != nil {
		t.Fatalf("ListActivity: %v", err)
	}
	if repo.lastPage != (entity.PageRequest{Page: entity.DefaultPage, Limit: entity.DefaultLimit}) {
		t.Fatalf("expected default page request, got %+v", repo.lastPage)
	}
	if res.Logs == nil || len(res.Logs) != 0 || res.Pagination.TotalPages != 0 {
		t.Fatalf("expected an empty first page, got %+v", res)
	}

	_, err = uc.ListActivity(context.Background(), uuid.New(), "0", "500")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if _, ok := verr.Fields["page"]; !ok {
		t.Fatalf("expected page error, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["limit"]; !ok {
		t.Fatalf("expected limit error, got %v", verr.Fields)
	}
}
