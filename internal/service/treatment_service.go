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
	"pawrescue-be/pkg/events"
	pktNats "pawrescue-be/pkg/nats"

	"github.com/google/uuid"
)

type ITreatmentService interface {
	Create(ctx context.Context, vetId uuid.UUID, req *dto.CreateTreatmentRequest) (*dto.CreateTreatmentResponse, error)
	ListByAnimal(ctx context.Context, animalId uuid.UUID) ([]*dto.TreatmentRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type treatmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewTreatmentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) ITreatmentService {
	return &treatmentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toTreatmentResponse(t *entity.TreatmentRecord) *dto.TreatmentRecordResponse {
	return &dto.TreatmentRecordResponse{
		Id:        t.Id,
		AnimalId:  t.AnimalId,
		VetId:     t.VetId,
		VetName:   t.VetName,
		Diagnosis: t.Diagnosis,
		Treatment: t.Treatment,
		Date:      t.Date,
	}
}

func (s *treatmentService) Create(ctx context.Context, vetId uuid.UUID, req *dto.CreateTreatmentRequest) (*dto.CreateTreatmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: req.AnimalId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	// Snapshot the vet's name onto the record: history stays readable even
	// if the account is later renamed or removed.
	vet, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: vetId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	vetName := ""
	if vet != nil {
		vetName = vet.Name
	}

	record := &entity.TreatmentRecord{
		Id:        uuid.New(),
		AnimalId:  req.AnimalId,
		VetId:     vetId,
		VetName:   vetName,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Date:      time.Now(),
	}

	if err := uow.TreatmentRepository().Create(ctx, record); err != nil {
		return nil, apperror.Persistence(err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TreatmentRecorded,
			Data: map[string]interface{}{
				"record_id":   record.Id,
				"animal_id":   animal.Id,
				"animal_name": animal.Name,
				"vet_name":    vetName,
				"actor_id":    vetId.String(),
				"entity_type": "animal",
				"entity_id":   animal.Id.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish TREATMENT_RECORDED event: %v\n", err)
		}
	}

	return &dto.CreateTreatmentResponse{Id: record.Id}, nil
}

func (s *treatmentService) ListByAnimal(ctx context.Context, animalId uuid.UUID) ([]*dto.TreatmentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.TreatmentRepository().FindAll(ctx,
		specification.ByAnimalID{AnimalID: animalId},
		specification.Scoped{Scope: scope.OrderByDateDesc},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := make([]*dto.TreatmentRecordResponse, 0, len(records))
	for _, t := range records {
		res = append(res, toTreatmentResponse(t))
	}
	return res, nil
}

func (s *treatmentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.TreatmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Persistence(err)
	}
	if record == nil {
		return apperror.NotFound("treatment record not found")
	}

	return uow.TreatmentRepository().Delete(ctx, id)
}
