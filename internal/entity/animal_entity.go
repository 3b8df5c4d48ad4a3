package entity

import (
	"time"

	"github.com/google/uuid"
)

type AnimalSpecies string

const (
	SpeciesDog     AnimalSpecies = "dog"
	SpeciesCat     AnimalSpecies = "cat"
	SpeciesRabbit  AnimalSpecies = "rabbit"
	SpeciesHamster AnimalSpecies = "hamster"
	SpeciesBird    AnimalSpecies = "bird"
	SpeciesOther   AnimalSpecies = "other"
)

// AnimalStatus lifecycle: "available" is the intake default, "adoptable"
// means staff cleared the animal for adoption. They are distinct states.
type AnimalStatus string

const (
	AnimalStatusAvailable  AnimalStatus = "available"
	AnimalStatusAdoptable  AnimalStatus = "adoptable"
	AnimalStatusPending    AnimalStatus = "pending"
	AnimalStatusAdopted    AnimalStatus = "adopted"
	AnimalStatusTreatment  AnimalStatus = "treatment"
	AnimalStatusCritical   AnimalStatus = "critical"
	AnimalStatusRecovering AnimalStatus = "recovering"
)

type Animal struct {
	Id          uuid.UUID
	Name        string
	Species     AnimalSpecies
	Breed       string
	Age         int
	PhotoURL    string
	Description string
	Status      AnimalStatus
	Location    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// OpenForAdoption reports whether adoption requests are accepted for the
// animal's current status.
func (a *Animal) OpenForAdoption() bool {
	return a.Status == AnimalStatusAvailable || a.Status == AnimalStatusAdoptable
}
