package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// RegisterRequest covers both user types; the professional fields are
// only read when user_type is "professional".
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	FullName    string `json:"full_name" validate:"notblank,min=2,max=100"`
	Phone       string `json:"phone" validate:"omitempty,phone_br"`
	CPF         string `json:"cpf" validate:"omitempty,cpf"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Masculino Feminino Outro"`
	UserType    string `json:"user_type" validate:"required,oneof=patient professional"`

	CRPCRM            string           `json:"crp_crm" validate:"required_if=UserType professional,max=20"`
	Specialty         string           `json:"specialty" validate:"required_if=UserType professional,max=100"`
	Bio               string           `json:"bio" validate:"max=1000"`
	ExperienceYears   int              `json:"experience_years" validate:"gte=0,lte=50"`
	ConsultationPrice *decimal.Decimal `json:"consultation_price"`
	Approach          string           `json:"approach" validate:"max=200"`
	Languages         string           `json:"languages" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest optionally carries the refresh token so it is revoked too
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	User  *UserResponse  `json:"user"`
	Token *TokenResponse `json:"token"`
}
