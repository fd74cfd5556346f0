package usecase

import (
	"context"
	"errors"
	"testing"

	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestGetUserOnlySelf(t *testing.T) {
	user := newTestUser(t, "amanda.silva@email.com", "123456", true)
	uc := NewUserUsecase(nil, discardLogger(), newFakeUserRepository(user), &fakeProfessionalRepository{}, newFakeTokenRepository(), nil)

	other := Actor{UserID: uuid.New(), UserType: entity.UserTypePatient}
	if _, err := uc.GetUser(context.Background(), other, user.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	self := Actor{UserID: user.ID, UserType: entity.UserTypePatient}
	got, err := uc.GetUser(context.Background(), self, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != user.Email {
		t.Fatalf("email = %q", got.Email)
	}
}

func TestPasswordConfirmationRequired(t *testing.T) {
	user := newTestUser(t, "amanda.silva@email.com", "123456", true)
	uc := NewUserUsecase(nil, discardLogger(), newFakeUserRepository(user), &fakeProfessionalRepository{}, newFakeTokenRepository(), nil)

	err := uc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "abcdef"})
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("ChangePassword err = %v, want ErrInvalidPassword", err)
	}

	err = uc.Deactivate(context.Background(), user.ID, &dto.DeactivateRequest{Password: "wrong"})
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("Deactivate err = %v, want ErrInvalidPassword", err)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	uc := NewUserUsecase(nil, discardLogger(), newFakeUserRepository(), &fakeProfessionalRepository{}, newFakeTokenRepository(), nil)

	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
