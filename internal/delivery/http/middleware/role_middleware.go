package middleware

import (
	"net/http"
	"slices"

	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/pkg/response"
)

// RequireUserType allows the request through only for the listed user types.
// User type is read from context (set by AuthMiddleware from JWT claims).
func RequireUserType(allowed ...entity.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type information not found")
				return
			}

			if !slices.Contains(allowed, userType) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireProfessional is a convenience middleware for professional-only endpoints
func RequireProfessional(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeProfessional)(next)
}
