package mapper

import (
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/model"
)

type TreatmentMapper struct{}

func NewTreatmentMapper() *TreatmentMapper {
	return &TreatmentMapper{}
}

func (m *TreatmentMapper) ToEntity(t *model.TreatmentRecord) *entity.TreatmentRecord {
	if t == nil {
		return nil
	}
	return &entity.TreatmentRecord{
		Id:        t.Id,
		AnimalId:  t.AnimalId,
		VetId:     t.VetId,
		VetName:   t.VetName,
		Diagnosis: t.Diagnosis,
		Treatment: t.Treatment,
		Date:      t.Date,
	}
}

func (m *TreatmentMapper) ToModel(t *entity.TreatmentRecord) *model.TreatmentRecord {
	if t == nil {
		return nil
	}
	return &model.TreatmentRecord{
		Id:        t.Id,
		AnimalId:  t.AnimalId,
		VetId:     t.VetId,
		VetName:   t.VetName,
		Diagnosis: t.Diagnosis,
		Treatment: t.Treatment,
		Date:      t.Date,
	}
}

func (m *TreatmentMapper) ToEntities(records []*model.TreatmentRecord) []*entity.TreatmentRecord {
	entities := make([]*entity.TreatmentRecord, len(records))
	for i, t := range records {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
