package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdoptionRequest struct {
	AnimalId uuid.UUID `json:"animal_id" validate:"required"`
	Message  string    `json:"message" validate:"required,min=10"`
}

type CreateAdoptionResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type DecideAdoptionRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type AdoptionRequestResponse struct {
	Id         uuid.UUID  `json:"id"`
	AnimalId   uuid.UUID  `json:"animal_id"`
	AnimalName string     `json:"animal_name,omitempty"`
	UserId     uuid.UUID  `json:"user_id"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}
