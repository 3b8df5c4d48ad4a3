package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProgressNote is a staff-authored recovery update for an animal, recording
// the status at the time the note was written. Append-only.
type ProgressNote struct {
	Id        uuid.UUID
	AnimalId  uuid.UUID
	AuthorId  uuid.UUID
	Status    AnimalStatus
	Note      string
	CreatedAt time.Time
}
