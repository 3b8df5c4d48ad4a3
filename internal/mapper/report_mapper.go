package mapper

import (
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/model"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.RescueReport) *entity.RescueReport {
	if r == nil {
		return nil
	}
	return &entity.RescueReport{
		Id:         r.Id,
		AnimalId:   r.AnimalId,
		ReporterId: r.ReporterId,
		Status:     entity.ReportStatus(r.Status),
		Notes:      r.Notes,
		Location:   r.Location,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *ReportMapper) ToModel(r *entity.RescueReport) *model.RescueReport {
	if r == nil {
		return nil
	}
	return &model.RescueReport{
		Id:         r.Id,
		AnimalId:   r.AnimalId,
		ReporterId: r.ReporterId,
		Status:     string(r.Status),
		Notes:      r.Notes,
		Location:   r.Location,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *ReportMapper) ToEntities(reports []*model.RescueReport) []*entity.RescueReport {
	entities := make([]*entity.RescueReport, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
