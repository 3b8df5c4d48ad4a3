package service

import (
	"context"
	"fmt"
	"time"

	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/internal/repository/scope"
	"pawrescue-be/internal/repository/specification"
	"pawrescue-be/internal/repository/unitofwork"
	"pawrescue-be/pkg/access"
	"pawrescue-be/pkg/events"
	pktNats "pawrescue-be/pkg/nats"
	"pawrescue-be/pkg/workflow"

	"github.com/google/uuid"
)

type IReportService interface {
	Create(ctx context.Context, reporterId uuid.UUID, req *dto.CreateReportRequest) (*dto.CreateReportResponse, error)
	List(ctx context.Context, status string) ([]*dto.RescueReportResponse, error)
	ListByAnimal(ctx context.Context, animalId uuid.UUID) ([]*dto.RescueReportResponse, error)
	Advance(ctx context.Context, role access.Role, req *dto.AdvanceReportRequest) (*dto.RescueReportResponse, error)
}

type reportService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewReportService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IReportService {
	return &reportService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toReportResponse(r *entity.RescueReport) *dto.RescueReportResponse {
	return &dto.RescueReportResponse{
		Id:         r.Id,
		AnimalId:   r.AnimalId,
		ReporterId: r.ReporterId,
		Status:     string(r.Status),
		Notes:      r.Notes,
		Location:   r.Location,
		CreatedAt:  r.CreatedAt,
	}
}

func (s *reportService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *reportService) Create(ctx context.Context, reporterId uuid.UUID, req *dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: req.AnimalId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	report := &entity.RescueReport{
		Id:         uuid.New(),
		AnimalId:   req.AnimalId,
		ReporterId: reporterId,
		Status:     entity.ReportStatusNew,
		Notes:      req.Notes,
		Location:   req.Location,
		CreatedAt:  time.Now(),
	}

	if err := uow.ReportRepository().Create(ctx, report); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.ReportSubmitted, map[string]interface{}{
		"report_id":   report.Id,
		"animal_id":   animal.Id,
		"animal_name": animal.Name,
		"location":    report.Location,
		"actor_id":    reporterId.String(),
		"entity_type": "report",
		"entity_id":   report.Id.String(),
	})

	return &dto.CreateReportResponse{Id: report.Id, Status: string(report.Status)}, nil
}

func (s *reportService) List(ctx context.Context, status string) ([]*dto.RescueReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.Scoped{Scope: scope.OrderByCreatedDesc},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	reports, err := uow.ReportRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := make([]*dto.RescueReportResponse, 0, len(reports))
	for _, r := range reports {
		res = append(res, toReportResponse(r))
	}
	return res, nil
}

func (s *reportService) ListByAnimal(ctx context.Context, animalId uuid.UUID) ([]*dto.RescueReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reports, err := uow.ReportRepository().FindAll(ctx,
		specification.ByAnimalID{AnimalID: animalId},
		specification.Scoped{Scope: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := make([]*dto.RescueReportResponse, 0, len(reports))
	for _, r := range reports {
		res = append(res, toReportResponse(r))
	}
	return res, nil
}

func (s *reportService) Advance(ctx context.Context, role access.Role, req *dto.AdvanceReportRequest) (*dto.RescueReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	report, err := uow.ReportRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if report == nil {
		return nil, apperror.NotFound("rescue report not found")
	}

	if err := workflow.Check(workflow.KindRescueReport, string(report.Status), req.Status, role); err != nil {
		return nil, err
	}

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: report.AnimalId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	animalName := "the animal"
	if animal != nil {
		animalName = animal.Name
	}

	previous := string(report.Status)
	report.Status = entity.ReportStatus(req.Status)

	if err := uow.ReportRepository().Update(ctx, report); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.ReportAdvanced, map[string]interface{}{
		"report_id":   report.Id,
		"animal_id":   report.AnimalId,
		"animal_name": animalName,
		"from":        previous,
		"to":          string(report.Status),
		"user_id":     report.ReporterId.String(),
		"entity_type": "report",
		"entity_id":   report.Id.String(),
	})

	return toReportResponse(report), nil
}
