package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnimalRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Species     string  `json:"species" validate:"required,oneof=dog cat rabbit hamster bird other"`
	Breed       string  `json:"breed" validate:"required,min=2"`
	Age         FlexInt `json:"age" validate:"min=0"`
	PhotoURL    string  `json:"photo_url" validate:"required,url"`
	Description string  `json:"description" validate:"required,min=10"`
	Location    string  `json:"location" validate:"required,min=5"`
}

type CreateAnimalResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type UpdateAnimalRequest struct {
	Id          uuid.UUID
	Name        string  `json:"name" validate:"required,min=2"`
	Species     string  `json:"species" validate:"required,oneof=dog cat rabbit hamster bird other"`
	Breed       string  `json:"breed" validate:"required,min=2"`
	Age         FlexInt `json:"age" validate:"min=0"`
	PhotoURL    string  `json:"photo_url" validate:"required,url"`
	Description string  `json:"description" validate:"required,min=10"`
	Location    string  `json:"location" validate:"required,min=5"`
}

type UpdateAnimalStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=available adoptable pending adopted treatment critical recovering"`
}

type AnimalResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Breed       string     `json:"breed"`
	Age         int        `json:"age"`
	PhotoURL    string     `json:"photo_url"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Location    string     `json:"location"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ListAnimalsQuery carries the optional listing filters. All empty means the
// full catalog.
type ListAnimalsQuery struct {
	Species string `query:"species" validate:"omitempty,oneof=dog cat rabbit hamster bird other"`
	Status  string `query:"status" validate:"omitempty,oneof=available adoptable pending adopted treatment critical recovering"`
	Search  string `query:"search"`
}
