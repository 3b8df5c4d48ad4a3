package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProgressNoteRequest struct {
	AnimalId uuid.UUID
	Note     string `json:"note" validate:"required,min=5"`
	Status   string `json:"status" validate:"required,oneof=available adoptable pending adopted treatment critical recovering"`
}

type CreateProgressNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type ProgressNoteResponse struct {
	Id        uuid.UUID `json:"id"`
	AnimalId  uuid.UUID `json:"animal_id"`
	AuthorId  uuid.UUID `json:"author_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
