package converter

import (
	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the Professional record if it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Gender:    user.Gender,
		UserType:  string(user.UserType),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DateOfBirth != nil {
		response.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}
	if user.CPF != nil {
		response.CPF = *user.CPF
	}
	if user.Professional != nil {
		response.Professional = ProfessionalToResponse(user.Professional)
	}

	return response
}
