package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	AnimalId uuid.UUID `json:"animal_id" validate:"required"`
	Notes    string    `json:"notes" validate:"required,min=10"`
	Location string    `json:"location" validate:"required,min=5"`
}

type CreateReportResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type AdvanceReportRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=new processing completed"`
}

type RescueReportResponse struct {
	Id         uuid.UUID `json:"id"`
	AnimalId   uuid.UUID `json:"animal_id"`
	ReporterId uuid.UUID `json:"reporter_id"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
}
