package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateProfileRequest is a partial update; nil fields are left untouched
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,notblank,min=2,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,phone_br"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=Masculino Feminino Outro"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

type DeactivateRequest struct {
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID           uuid.UUID             `json:"id"`
	Email        string                `json:"email"`
	FullName     string                `json:"full_name"`
	Phone        string                `json:"phone,omitempty"`
	DateOfBirth  string                `json:"date_of_birth,omitempty"`
	Gender       string                `json:"gender,omitempty"`
	CPF          string                `json:"cpf,omitempty"`
	UserType     string                `json:"user_type"`
	IsActive     bool                  `json:"is_active"`
	Professional *ProfessionalResponse `json:"professional,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
