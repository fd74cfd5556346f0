package converter

import (
	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO.
// The owner is included only when it was loaded.
func ProfessionalToResponse(p *entity.Professional) *dto.ProfessionalResponse {
	if p == nil {
		return nil
	}

	response := &dto.ProfessionalResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		CRPCRM:            p.CRPCRM,
		Specialty:         p.Specialty,
		Bio:               p.Bio,
		ExperienceYears:   p.ExperienceYears,
		ConsultationPrice: p.ConsultationPrice.StringFixed(2),
		Approach:          p.Approach,
		Languages:         p.Languages,
		IsVerified:        p.IsVerified,
		Rating:            p.Rating.StringFixed(2),
		TotalReviews:      p.TotalReviews,
		IsAvailable:       p.IsAvailable,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}

	if p.User.ID != uuid.Nil {
		response.User = &dto.ProfessionalUserResponse{
			ID:       p.User.ID,
			FullName: p.User.FullName,
			Email:    p.User.Email,
			Phone:    p.User.Phone,
		}
	}

	return response
}

// ProfessionalsToResponses never returns nil so an empty page encodes as []
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}

func PaginationToResponse(p entity.Pagination) dto.PaginationResponse {
	return dto.PaginationResponse{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
		HasNextPage:  p.HasNextPage,
		HasPrevPage:  p.HasPrevPage,
	}
}
