package handler

import (
	"net/http"
	"strconv"

	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/usecase"
	"mentecare-backend/pkg/response"
	"mentecare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
	errors              *ErrorResponder
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator, errors *ErrorResponder) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
		errors:              errors,
	}
}

// Search handles the public professional search
// @Summary Search professionals
// @Description Ranked, paginated search over verified and available professionals
// @Tags Professionals
// @Produce json
// @Param specialty query string false "Specialty substring"
// @Param min_price query number false "Minimum consultation price"
// @Param max_price query number false "Maximum consultation price"
// @Param rating query number false "Minimum rating"
// @Param experience_years query int false "Minimum years of experience"
// @Param approach query string false "Approach substring"
// @Param language query string false "Language substring"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /professionals/search [get]
func (h *ProfessionalHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := dto.NewSearchProfessionalsQuery(r.URL.Query())

	result, err := h.professionalUsecase.Search(r.Context(), query)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		h.errors.Internal(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", result)
}

// ListSpecialties handles GET /professionals/specialties
func (h *ProfessionalHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	result, err := h.professionalUsecase.ListSpecialties(r.Context())
	if err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", result)
}

func (h *ProfessionalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		response.ValidationError(w, map[string]string{"id": "id must be a positive integer"})
		return
	}

	professional, err := h.professionalUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["user_id"])
	if err != nil {
		response.ValidationError(w, map[string]string{"user_id": "user_id must be a valid UUID"})
		return
	}

	professional, err := h.professionalUsecase.GetByUserID(r.Context(), actor, userID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You can only access your own professional profile")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

// UpdateByUserID handles the owner's partial profile update
// @Summary Update own professional profile
// @Tags Professionals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user_id path string true "Owner user ID"
// @Param request body dto.UpdateProfessionalRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /professionals/user/{user_id} [put]
func (h *ProfessionalHandler) UpdateByUserID(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["user_id"])
	if err != nil {
		response.ValidationError(w, map[string]string{"user_id": "user_id must be a valid UUID"})
		return
	}

	// Ownership is checked before the body is even read
	if actor.UserID != userID {
		response.Forbidden(w, "You can only update your own professional profile")
		return
	}

	var req dto.UpdateProfessionalRequest
	if !decodeJSON(w, r, &req, true, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.Update(r.Context(), actor, userID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You can only update your own professional profile")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}
