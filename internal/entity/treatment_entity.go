package entity

import (
	"time"

	"github.com/google/uuid"
)

// TreatmentRecord is an append-only veterinary history entry. It is never
// mutated after creation, only added or administratively removed.
type TreatmentRecord struct {
	Id        uuid.UUID
	AnimalId  uuid.UUID
	VetId     uuid.UUID
	VetName   string
	Diagnosis string
	Treatment string
	Date      time.Time
}
