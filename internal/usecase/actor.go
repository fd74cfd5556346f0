package usecase

import (
	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID   uuid.UUID
	UserType entity.UserType
}
