package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateUserRoleRequest is admin-only; there is no self-service promotion.
type UpdateUserRoleRequest struct {
	Id   uuid.UUID
	Role string `json:"role" validate:"required,oneof=user vet admin"`
}

type UpdateUserRoleResponse struct {
	Id   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}
