package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleVet   UserRole = "vet"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	Username     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRefreshToken backs the "remember me" session. Only the sha256 hash of
// the raw token is persisted.
type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	IpAddress string
	UserAgent string
}
