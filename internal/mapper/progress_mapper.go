package mapper

import (
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) ToEntity(n *model.ProgressNote) *entity.ProgressNote {
	if n == nil {
		return nil
	}
	return &entity.ProgressNote{
		Id:        n.Id,
		AnimalId:  n.AnimalId,
		AuthorId:  n.AuthorId,
		Status:    entity.AnimalStatus(n.Status),
		Note:      n.Note,
		CreatedAt: n.CreatedAt,
	}
}

func (m *ProgressMapper) ToModel(n *entity.ProgressNote) *model.ProgressNote {
	if n == nil {
		return nil
	}
	return &model.ProgressNote{
		Id:        n.Id,
		AnimalId:  n.AnimalId,
		AuthorId:  n.AuthorId,
		Status:    string(n.Status),
		Note:      n.Note,
		CreatedAt: n.CreatedAt,
	}
}

func (m *ProgressMapper) ToEntities(notes []*model.ProgressNote) []*entity.ProgressNote {
	entities := make([]*entity.ProgressNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
