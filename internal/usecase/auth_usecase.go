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
	"mentecare-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minLicenseLength = 5

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID string, req *dto.LogoutRequest) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalRepository
	tokenRepo        repository.TokenRepository
	auditService     service.AuditService
	jwtService       *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalRepository,
	tokenRepo repository.TokenRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		tokenRepo:        tokenRepo,
		auditService:     auditService,
		jwtService:       jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, professional, err := newRegistration(req)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}
	user.Password = string(hashedPassword)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if professional != nil {
		professional.UserID = user.ID
		if err := u.professionalRepo.Create(ctx, tx, professional); err != nil {
			if isDuplicateKeyError(err, "crp_crm") {
				return nil, ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create professional: %+v", err)
			return nil, err
		}
		user.Professional = professional
	}

	userResponse := converter.UserToResponse(user)
	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), userResponse); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	token, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: userResponse, Token: token}, nil
}

// newRegistration builds the rows to insert, applying the professional
// defaults. professional is nil for patients.
func newRegistration(req *dto.RegisterRequest) (*entity.User, *entity.Professional, error) {
	user := &entity.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		FullName: strings.TrimSpace(req.FullName),
		Phone:    req.Phone,
		Gender:   req.Gender,
		UserType: entity.UserType(req.UserType),
		IsActive: true,
	}
	if req.CPF != "" {
		cpf := req.CPF
		user.CPF = &cpf
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, nil, newValidationError("date_of_birth", "date_of_birth must be a date in the format YYYY-MM-DD")
		}
		user.DateOfBirth = &dob
	}

	if !user.IsProfessional() {
		return user, nil, nil
	}

	license := strings.TrimSpace(req.CRPCRM)
	if len(license) < minLicenseLength {
		return nil, nil, newValidationError("crp_crm", "crp_crm must be at least 5 characters")
	}
	specialty := strings.TrimSpace(req.Specialty)
	if specialty == "" {
		return nil, nil, newValidationError("specialty", "specialty is required")
	}

	price := decimal.Zero
	if req.ConsultationPrice != nil {
		if verr := checkConsultationPrice(*req.ConsultationPrice); verr != nil {
			return nil, nil, verr
		}
		price = req.ConsultationPrice.Round(2)
	}

	languages := strings.TrimSpace(req.Languages)
	if languages == "" {
		languages = entity.DefaultLanguages
	}

	professional := &entity.Professional{
		CRPCRM:            license,
		Specialty:         specialty,
		Bio:               req.Bio,
		ExperienceYears:   req.ExperienceYears,
		ConsultationPrice: price,
		Approach:          strings.TrimSpace(req.Approach),
		Languages:         languages,
		IsVerified:        false,
		Rating:            decimal.Zero,
		IsAvailable:       true,
	}
	return user, professional, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	token, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: converter.UserToResponse(user), Token: token}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string, req *dto.LogoutRequest) error {
	if err := u.tokenRepo.Delete(ctx, repository.TokenKindAccess, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if req == nil || req.RefreshToken == "" {
		return nil
	}

	// An unusable refresh token is left to expire on its own
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.UserID != userID {
		return nil
	}
	if err := u.tokenRepo.Delete(ctx, repository.TokenKindRefresh, userID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete refresh token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenRepo.Exists(ctx, repository.TokenKindRefresh, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	if err := u.tokenRepo.Delete(ctx, repository.TokenKindRefresh, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	// Re-read the user so deactivation and role changes take effect
	user, err := u.userRepo.FindByID(ctx, u.db, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
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

// issueTokens signs a new access/refresh pair and records both in the
// token store so they can be revoked.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	sub := jwt.Subject{UserID: user.ID, Email: user.Email, UserType: string(user.UserType)}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Save(ctx, repository.TokenKindAccess, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.tokenRepo.Save(ctx, repository.TokenKindRefresh, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
