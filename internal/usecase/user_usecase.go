package usecase

import (
	"context"
	"strings"
	"time"

	"mentecare-backend/internal/converter"
	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/internal/domain/repository"
	"mentecare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	GetUser(ctx context.Context, actor Actor, id uuid.UUID) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, userID uuid.UUID, req *dto.DeactivateRequest) error
}

type userUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalRepository
	tokenRepo        repository.TokenRepository
	auditService     service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalRepository,
	tokenRepo repository.TokenRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		tokenRepo:        tokenRepo,
		auditService:     auditService,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByIDWithProfessional(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, newValidationError("date_of_birth", "date_of_birth must be a date in the format YYYY-MM-DD")
		}
		fields["date_of_birth"] = dob
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByIDWithProfessional(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	oldValue := converter.UserToResponse(user)

	if err := u.userRepo.UpdateFields(ctx, tx, userID, fields); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	updated, err := u.userRepo.FindByIDWithProfessional(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to reload user: %+v", err)
		return nil, err
	}
	newValue := converter.UserToResponse(updated)

	if len(fields) > 0 {
		if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, "user", userID.String(), oldValue, newValue); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// ChangePassword replaces the password hash and revokes every issued
// token, so all sessions must log in again.
func (u *userUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.UpdateFields(ctx, tx, userID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionUserPasswordChange, "user", userID.String(), nil, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokenRepo.DeleteAllForUser(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}
	return nil
}

// GetUser returns a user record; callers may only read their own.
func (u *userUsecase) GetUser(ctx context.Context, actor Actor, id uuid.UUID) (*dto.UserResponse, error) {
	if actor.UserID != id {
		return nil, ErrForbidden
	}
	return u.GetProfile(ctx, id)
}

// Deactivate disables the account and hides the professional record from
// search. Rows are kept; nothing is hard-deleted.
func (u *userUsecase) Deactivate(ctx context.Context, userID uuid.UUID, req *dto.DeactivateRequest) error {
	user, err := u.userRepo.FindByIDWithProfessional(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return ErrInvalidPassword
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.UpdateFields(ctx, tx, userID, map[string]interface{}{"is_active": false}); err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}

	if user.Professional != nil {
		if err := u.professionalRepo.UpdateFields(ctx, tx, user.Professional.ID, map[string]interface{}{"is_available": false}); err != nil {
			u.log.Warnf("Failed to mark professional unavailable: %+v", err)
			return err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionUserDeactivate, "user", userID.String(),
		map[string]interface{}{"is_active": user.IsActive},
		map[string]interface{}{"is_active": false},
	); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokenRepo.DeleteAllForUser(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}
	return nil
}
