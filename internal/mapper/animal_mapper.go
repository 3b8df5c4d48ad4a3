package mapper

import (
	"time"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/model"
)

type AnimalMapper struct{}

func NewAnimalMapper() *AnimalMapper {
	return &AnimalMapper{}
}

func (m *AnimalMapper) ToEntity(a *model.Animal) *entity.Animal {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Animal{
		Id:          a.Id,
		Name:        a.Name,
		Species:     entity.AnimalSpecies(a.Species),
		Breed:       a.Breed,
		Age:         a.Age,
		PhotoURL:    a.PhotoURL,
		Description: a.Description,
		Status:      entity.AnimalStatus(a.Status),
		Location:    a.Location,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *AnimalMapper) ToModel(a *entity.Animal) *model.Animal {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Animal{
		Id:          a.Id,
		Name:        a.Name,
		Species:     string(a.Species),
		Breed:       a.Breed,
		Age:         a.Age,
		PhotoURL:    a.PhotoURL,
		Description: a.Description,
		Status:      string(a.Status),
		Location:    a.Location,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *AnimalMapper) ToEntities(animals []*model.Animal) []*entity.Animal {
	entities := make([]*entity.Animal, len(animals))
	for i, a := range animals {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
