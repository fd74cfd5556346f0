package handler

import (
	"net/http"

	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/usecase"
	"mentecare-backend/pkg/response"
	"mentecare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase     usecase.UserUsecase
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
	errors          *ErrorResponder
}

func NewUserHandler(userUsecase usecase.UserUsecase, auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator, errors *ErrorResponder) *UserHandler {
	return &UserHandler{
		userUsecase:     userUsecase,
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
		errors:          errors,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.userUsecase.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if !decodeJSON(w, r, &req, true, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), actor.UserID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", user)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ChangePasswordRequest
	if !decodeJSON(w, r, &req, false, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.userUsecase.ChangePassword(r.Context(), actor.UserID, &req); err != nil {
		switch err {
		case usecase.ErrInvalidPassword:
			response.BadRequest(w, "Current password is incorrect")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Password changed successfully, please log in again", nil)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, map[string]string{"id": "id must be a valid UUID"})
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), actor, id)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You can only access your own data")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.DeactivateRequest
	if !decodeJSON(w, r, &req, false, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.userUsecase.Deactivate(r.Context(), actor.UserID, &req); err != nil {
		switch err {
		case usecase.ErrInvalidPassword:
			response.BadRequest(w, "Password is incorrect")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Account deactivated successfully", nil)
}

// ListActivity returns the caller's audit trail
func (h *UserHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	q := r.URL.Query()
	logs, err := h.auditLogUsecase.ListActivity(r.Context(), actor.UserID, q.Get("page"), q.Get("limit"))
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		h.errors.Internal(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", logs)
}
