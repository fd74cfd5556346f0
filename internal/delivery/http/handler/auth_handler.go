package handler

import (
	"net/http"

	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/delivery/http/middleware"
	"mentecare-backend/internal/usecase"
	"mentecare-backend/pkg/response"
	"mentecare-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	errors      *ErrorResponder
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, errors *ErrorResponder) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		errors:      errors,
	}
}

// Register handles user registration
// @Summary Register a patient or professional
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req, false, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrCPFAlreadyExists:
			response.Conflict(w, "CPF already exists")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "CRP/CRM already exists")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", result)
}

// Login handles user login
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req, false, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case usecase.ErrAccountInactive:
			response.Forbidden(w, "Account is inactive")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", result)
}

// Verify returns the user behind the presented access token
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Token is valid", map[string]interface{}{"user": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Body is optional
	var req dto.LogoutRequest
	if !decodeJSON(w, r, &req, false, true) {
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, &req); err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if !decodeJSON(w, r, &req, false, false) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.Unauthorized(w, "Invalid or expired refresh token")
		case usecase.ErrTokenRevoked:
			response.Unauthorized(w, "Refresh token has been revoked")
		case usecase.ErrAccountInactive:
			response.Forbidden(w, "Account is inactive")
		default:
			h.errors.Internal(w, r, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}
