package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusNew        ReportStatus = "new"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
)

// RescueReport is a field report describing an animal needing rescue.
type RescueReport struct {
	Id         uuid.UUID
	AnimalId   uuid.UUID
	ReporterId uuid.UUID
	Status     ReportStatus
	Notes      string
	Location   string
	CreatedAt  time.Time
}
