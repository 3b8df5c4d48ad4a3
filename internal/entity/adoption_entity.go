package entity

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// AdoptionRequest links a user to the animal they want to adopt. Immutable
// after creation except for its status.
type AdoptionRequest struct {
	Id        uuid.UUID
	AnimalId  uuid.UUID
	UserId    uuid.UUID
	Message   string
	Status    RequestStatus
	CreatedAt time.Time
	DecidedAt *time.Time
}
