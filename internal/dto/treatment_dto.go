package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTreatmentRequest struct {
	AnimalId  uuid.UUID `json:"animal_id" validate:"required"`
	Diagnosis string    `json:"diagnosis" validate:"required,min=10"`
	Treatment string    `json:"treatment" validate:"required,min=10"`
}

type CreateTreatmentResponse struct {
	Id uuid.UUID `json:"id"`
}

type TreatmentRecordResponse struct {
	Id        uuid.UUID `json:"id"`
	AnimalId  uuid.UUID `json:"animal_id"`
	VetId     uuid.UUID `json:"vet_id"`
	VetName   string    `json:"vet_name"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
	Date      time.Time `json:"date"`
}
