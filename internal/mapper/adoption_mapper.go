package mapper

import (
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/model"
)

type AdoptionMapper struct{}

func NewAdoptionMapper() *AdoptionMapper {
	return &AdoptionMapper{}
}

func (m *AdoptionMapper) ToEntity(r *model.AdoptionRequest) *entity.AdoptionRequest {
	if r == nil {
		return nil
	}
	return &entity.AdoptionRequest{
		Id:        r.Id,
		AnimalId:  r.AnimalId,
		UserId:    r.UserId,
		Message:   r.Message,
		Status:    entity.RequestStatus(r.Status),
		CreatedAt: r.CreatedAt,
		DecidedAt: r.DecidedAt,
	}
}

func (m *AdoptionMapper) ToModel(r *entity.AdoptionRequest) *model.AdoptionRequest {
	if r == nil {
		return nil
	}
	return &model.AdoptionRequest{
		Id:        r.Id,
		AnimalId:  r.AnimalId,
		UserId:    r.UserId,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		DecidedAt: r.DecidedAt,
	}
}

func (m *AdoptionMapper) ToEntities(requests []*model.AdoptionRequest) []*entity.AdoptionRequest {
	entities := make([]*entity.AdoptionRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
