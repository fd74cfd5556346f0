package repository_test

import (
	"context"
	"testing"

	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/internal/repository"
	"mentecare-backend/internal/repository/testutil"
)

func TestAuditLogFindByUserIDNewestFirst(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := repository.NewAuditLogRepository()

	user := testutil.SeedUser(t, ctx, tx, entity.UserTypePatient)
	other := testutil.SeedUser(t, ctx, tx, entity.UserTypePatient)

	actions := []string{entity.AuditActionUserRegister, entity.AuditActionProfileUpdate, entity.AuditActionUserPasswordChange}
	for _, action := range actions {
		if err := repo.Create(ctx, tx, &entity.AuditLog{UserID: &user.ID, Action: action, Metadata: entity.JSON{"entity": "user"}}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, tx, &entity.AuditLog{UserID: &other.ID, Action: entity.AuditActionUserRegister}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	logs, total, err := repo.FindByUserID(ctx, tx, user.ID, entity.PageRequest{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 entries, got %d", total)
	}
	// id breaks ties when created_at collides
	if len(logs) != 2 || logs[0].Action != entity.AuditActionUserPasswordChange || logs[1].Action != entity.AuditActionProfileUpdate {
		t.Fatalf("unexpected order: %+v", logs)
	}
	if logs[0].Metadata["entity"] != "user" {
		t.Fatalf("metadata not round-tripped: %+v", logs[0].Metadata)
	}
}
